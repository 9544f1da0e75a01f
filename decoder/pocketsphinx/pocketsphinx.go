// Package pocketsphinx implements decoder.Engine by driving a local
// pocketsphinx decoder binary as a subprocess. The input stream is fed on
// stdin and the hypothesis is read from stdout.
//
// Unlike the sidecar backends the binary keeps no session state, so the
// run summary is accumulated client-side.
package pocketsphinx

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/kbukum/decodekit/decoder"
	"github.com/kbukum/decodekit/errors"
	"github.com/kbukum/decodekit/process"
	"github.com/kbukum/decodekit/provider"
)

const (
	// EngineName is the registered name for the pocketsphinx engine.
	EngineName = "pocketsphinx"

	defaultBinary = "pocketsphinx"
)

// Config holds configuration for the pocketsphinx engine.
type Config struct {
	// Binary is the decoder executable, resolved via PATH when relative.
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`
	// ModelDir is passed as -hmm when set.
	ModelDir string `json:"model_dir,omitempty" yaml:"model_dir" mapstructure:"model_dir"`
	// ExtraArgs are appended to every invocation.
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args" mapstructure:"extra_args"`
	// Timeout bounds a single decode call. Zero means no bound.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Engine implements decoder.Engine using a local decoder binary.
type Engine struct {
	cfg Config

	mu      sync.Mutex
	decoded int
	failed  int
}

// NewEngine creates a new pocketsphinx engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	return &Engine{cfg: cfg}
}

// Factory returns a provider.Factory that creates pocketsphinx Engine
// instances from a generic config map.
func Factory() provider.Factory[decoder.Engine] {
	return func(cfg map[string]any) (decoder.Engine, error) {
		pc := Config{}
		if v, ok := cfg["binary"].(string); ok {
			pc.Binary = v
		}
		if v, ok := cfg["model_dir"].(string); ok {
			pc.ModelDir = v
		}
		if v, ok := cfg["extra_args"].([]string); ok {
			pc.ExtraArgs = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			pc.Timeout = v
		}
		return NewEngine(pc), nil
	}
}

// Name returns the engine name.
func (e *Engine) Name() string { return EngineName }

// IsAvailable checks if the decoder binary is on the PATH.
func (e *Engine) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath(e.cfg.Binary)
	return err == nil
}

// DecodeAudio decodes a raw audio signal stream fed on stdin.
func (e *Engine) DecodeAudio(ctx context.Context, input io.Reader, ref decoder.Ref) (*decoder.Result, error) {
	return e.decode(ctx, "single", input, ref)
}

// DecodeCepstrum decodes pre-extracted cepstral features fed on stdin.
func (e *Engine) DecodeCepstrum(ctx context.Context, input io.Reader, ref decoder.Ref) (*decoder.Result, error) {
	return e.decode(ctx, "cepstra", input, ref)
}

func (e *Engine) decode(ctx context.Context, mode string, input io.Reader, _ decoder.Ref) (*decoder.Result, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	args := []string{mode}
	if e.cfg.ModelDir != "" {
		args = append(args, "-hmm", e.cfg.ModelDir)
	}
	args = append(args, e.cfg.ExtraArgs...)
	args = append(args, "-")

	result, err := process.Run(ctx, process.Command{
		Binary: e.cfg.Binary,
		Args:   args,
		Stdin:  input,
	})
	if err != nil {
		e.record(false)
		return nil, runError(ctx, mode, err)
	}

	e.record(true)
	return &decoder.Result{Hypothesis: parseHypothesis(result.Stdout)}, nil
}

// runError classifies a failed subprocess run. A run killed by the decode
// deadline is reported as a timeout so callers can tell it apart from a
// decoder crash.
func runError(ctx context.Context, mode string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return errors.Timeout("pocketsphinx " + mode).WithCause(err)
	}
	return fmt.Errorf("pocketsphinx %s: %w", mode, err)
}

// Summary reports counts accumulated across this engine instance's calls.
func (e *Engine) Summary(_ context.Context) (*decoder.Summary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &decoder.Summary{Decoded: e.decoded, Errors: e.failed}, nil
}

func (e *Engine) record(ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ok {
		e.decoded++
	} else {
		e.failed++
	}
}

// parseHypothesis extracts the hypothesis from decoder stdout: the last
// non-empty line, since the binary prints progress above the result.
func parseHypothesis(stdout []byte) string {
	lines := strings.Split(string(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
