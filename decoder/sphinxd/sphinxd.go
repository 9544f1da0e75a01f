// Package sphinxd implements decoder.Engine against a sphinxd HTTP decode
// sidecar. The sidecar owns the acoustic and language models; this client
// only streams inputs and collects hypotheses.
package sphinxd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/kbukum/decodekit/decoder"
	"github.com/kbukum/decodekit/provider"
)

const (
	// EngineName is the registered name for the sphinxd engine.
	EngineName = "sphinxd"

	defaultURL     = "http://localhost:8720"
	defaultTimeout = 300 * time.Second
)

// Config holds configuration for the sphinxd engine.
type Config struct {
	URL     string        `json:"url" yaml:"url" mapstructure:"url"`
	Model   string        `json:"model,omitempty" yaml:"model" mapstructure:"model"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Engine implements decoder.Engine using a sphinxd HTTP sidecar.
type Engine struct {
	cfg    Config
	client *http.Client
}

// NewEngine creates a new sphinxd engine client.
func NewEngine(cfg Config) *Engine {
	if cfg.URL == "" {
		cfg.URL = defaultURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Engine{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Factory returns a provider.Factory that creates sphinxd Engine
// instances from a generic config map.
func Factory() provider.Factory[decoder.Engine] {
	return func(cfg map[string]any) (decoder.Engine, error) {
		sc := Config{}
		if v, ok := cfg["url"].(string); ok {
			sc.URL = v
		}
		if v, ok := cfg["model"].(string); ok {
			sc.Model = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			sc.Timeout = v
		}
		return NewEngine(sc), nil
	}
}

// Name returns the engine name.
func (e *Engine) Name() string { return EngineName }

// IsAvailable checks if the sphinxd sidecar is reachable.
func (e *Engine) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.cfg.URL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// DecodeAudio streams a raw audio signal to the sidecar's audio endpoint.
func (e *Engine) DecodeAudio(ctx context.Context, input io.Reader, ref decoder.Ref) (*decoder.Result, error) {
	return e.decode(ctx, "/decode/audio", input, ref)
}

// DecodeCepstrum streams pre-extracted cepstral features to the sidecar's
// cepstra endpoint.
func (e *Engine) DecodeCepstrum(ctx context.Context, input io.Reader, ref decoder.Ref) (*decoder.Result, error) {
	return e.decode(ctx, "/decode/cepstra", input, ref)
}

func (e *Engine) decode(ctx context.Context, path string, input io.Reader, ref decoder.Ref) (*decoder.Result, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("input", "input.bin")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, input); err != nil {
		return nil, fmt.Errorf("copy input stream: %w", err)
	}

	if e.cfg.Model != "" {
		_ = writer.WriteField("model", e.cfg.Model)
	}
	if ref.Present {
		_ = writer.WriteField("reference", ref.Text)
	}
	writer.Close()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.URL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sphinxd request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sphinxd error (status %d): %s", resp.StatusCode, string(body))
	}

	var result decodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode sphinxd response: %w", err)
	}

	return &decoder.Result{
		Hypothesis:   result.Hypothesis,
		Score:        result.Score,
		AudioSeconds: result.AudioSeconds,
	}, nil
}

// Summary fetches the sidecar's aggregate report for the current session.
func (e *Engine) Summary(ctx context.Context) (*decoder.Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.cfg.URL+"/summary", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sphinxd request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sphinxd error (status %d): %s", resp.StatusCode, string(body))
	}

	var result summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode sphinxd response: %w", err)
	}

	return &decoder.Summary{
		Decoded:       result.Decoded,
		Errors:        result.Errors,
		WordErrorRate: result.WordErrorRate,
		AudioSeconds:  result.AudioSeconds,
	}, nil
}

// --- internal sphinxd API response types ---

type decodeResponse struct {
	Hypothesis   string  `json:"hypothesis"`
	Score        float64 `json:"score"`
	AudioSeconds float64 `json:"audio_seconds"`
}

type summaryResponse struct {
	Decoded       int     `json:"decoded"`
	Errors        int     `json:"errors"`
	WordErrorRate float64 `json:"word_error_rate"`
	AudioSeconds  float64 `json:"audio_seconds"`
}
