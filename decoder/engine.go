package decoder

import (
	"context"
	"io"

	"github.com/kbukum/decodekit/errors"
	"github.com/kbukum/decodekit/provider"
)

// Engine is the interface that decoding backends must implement.
//
// Audio and cepstral inputs are structurally different payloads, so each
// has its own entry point; routing a stream to the wrong one is a caller
// error the engine is free to reject. Calls are synchronous and engines
// are not assumed to be reentrant: the batch dispatcher issues one call
// at a time per engine instance.
type Engine interface {
	provider.Provider // embeds Name() and IsAvailable()

	// DecodeAudio decodes a raw audio signal stream.
	DecodeAudio(ctx context.Context, input io.Reader, ref Ref) (*Result, error)
	// DecodeCepstrum decodes a stream of pre-extracted cepstral features.
	DecodeCepstrum(ctx context.Context, input io.Reader, ref Ref) (*Result, error)
	// Summary reports aggregate statistics for the run so far.
	Summary(ctx context.Context) (*Summary, error)
}

// Decode routes input to the engine entry point selected by kind.
func Decode(ctx context.Context, e Engine, kind InputKind, input io.Reader, ref Ref) (*Result, error) {
	switch kind {
	case InputAudio:
		return e.DecodeAudio(ctx, input, ref)
	case InputCepstrum:
		return e.DecodeCepstrum(ctx, input, ref)
	default:
		return nil, errors.UnsupportedInputKind(string(kind))
	}
}
