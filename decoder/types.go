package decoder

import (
	"strings"

	"github.com/kbukum/decodekit/errors"
)

// InputKind is the structural category of a run's inputs. It selects which
// decode entry point the dispatcher uses and does not vary per record.
type InputKind string

const (
	// InputAudio marks raw audio signal inputs. This is the default.
	InputAudio InputKind = "audio"
	// InputCepstrum marks pre-extracted cepstral feature inputs.
	InputCepstrum InputKind = "cepstrum"
)

// ParseInputKind parses a configured input kind string. The empty string
// defaults to audio. Anything else is a fatal configuration error.
func ParseInputKind(s string) (InputKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(InputAudio):
		return InputAudio, nil
	case string(InputCepstrum):
		return InputCepstrum, nil
	default:
		return "", errors.UnsupportedInputKind(s)
	}
}

// Ref carries an optional reference transcript attached to a decode call.
// A zero Ref means no reference was supplied, which is a different value
// than an empty transcript.
type Ref struct {
	// Text is the reference transcript.
	Text string `json:"text"`
	// Present reports whether a reference was supplied at all.
	Present bool `json:"present"`
}

// NewRef returns a present Ref with the given transcript.
func NewRef(text string) Ref { return Ref{Text: text, Present: true} }

// Result holds the outcome of decoding a single input.
type Result struct {
	// Hypothesis is the recognized text.
	Hypothesis string `json:"hypothesis"`
	// Score is the engine's path or confidence score, if reported.
	Score float64 `json:"score,omitempty"`
	// AudioSeconds is the input length in seconds, if reported.
	AudioSeconds float64 `json:"audio_seconds,omitempty"`
}

// Summary aggregates per-run statistics reported by the engine.
type Summary struct {
	// Decoded is the number of inputs decoded so far.
	Decoded int `json:"decoded"`
	// Errors is the number of failed decode calls.
	Errors int `json:"errors"`
	// WordErrorRate is the accumulated WER against supplied references,
	// if the engine scores hypotheses.
	WordErrorRate float64 `json:"word_error_rate,omitempty"`
	// AudioSeconds is the total decoded audio length in seconds.
	AudioSeconds float64 `json:"audio_seconds,omitempty"`
}
