package decoder

import (
	"context"
	"io"
	"strings"
	"testing"
)

type fakeEngine struct {
	audioCalls    int
	cepstrumCalls int
	lastRef       Ref
}

func (f *fakeEngine) Name() string                       { return "fake" }
func (f *fakeEngine) IsAvailable(_ context.Context) bool { return true }

func (f *fakeEngine) DecodeAudio(_ context.Context, _ io.Reader, ref Ref) (*Result, error) {
	f.audioCalls++
	f.lastRef = ref
	return &Result{Hypothesis: "audio"}, nil
}

func (f *fakeEngine) DecodeCepstrum(_ context.Context, _ io.Reader, ref Ref) (*Result, error) {
	f.cepstrumCalls++
	f.lastRef = ref
	return &Result{Hypothesis: "cepstrum"}, nil
}

func (f *fakeEngine) Summary(_ context.Context) (*Summary, error) {
	return &Summary{Decoded: f.audioCalls + f.cepstrumCalls}, nil
}

func TestParseInputKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    InputKind
		wantErr bool
	}{
		{"empty defaults to audio", "", InputAudio, false},
		{"audio", "audio", InputAudio, false},
		{"cepstrum", "cepstrum", InputCepstrum, false},
		{"case and space insensitive", "  Cepstrum ", InputCepstrum, false},
		{"unknown kind", "mfcc", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInputKind(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDecode_RoutesByKind(t *testing.T) {
	ctx := context.Background()
	stream := strings.NewReader("pcm")

	t.Run("audio", func(t *testing.T) {
		eng := &fakeEngine{}
		res, err := Decode(ctx, eng, InputAudio, stream, Ref{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Hypothesis != "audio" {
			t.Errorf("expected audio entry point, got %q", res.Hypothesis)
		}
		if eng.audioCalls != 1 || eng.cepstrumCalls != 0 {
			t.Errorf("expected exactly one audio call, got audio=%d cepstrum=%d", eng.audioCalls, eng.cepstrumCalls)
		}
	})

	t.Run("cepstrum", func(t *testing.T) {
		eng := &fakeEngine{}
		res, err := Decode(ctx, eng, InputCepstrum, stream, Ref{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Hypothesis != "cepstrum" {
			t.Errorf("expected cepstrum entry point, got %q", res.Hypothesis)
		}
		if eng.cepstrumCalls != 1 || eng.audioCalls != 0 {
			t.Errorf("expected exactly one cepstrum call, got audio=%d cepstrum=%d", eng.audioCalls, eng.cepstrumCalls)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		eng := &fakeEngine{}
		if _, err := Decode(ctx, eng, InputKind("mfcc"), stream, Ref{}); err == nil {
			t.Fatal("expected error for unknown kind")
		}
		if eng.audioCalls != 0 || eng.cepstrumCalls != 0 {
			t.Error("expected no engine call for unknown kind")
		}
	})
}

func TestDecode_RefPassthrough(t *testing.T) {
	eng := &fakeEngine{}
	ref := NewRef("HELLO WORLD")
	if _, err := Decode(context.Background(), eng, InputAudio, strings.NewReader(""), ref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eng.lastRef.Present || eng.lastRef.Text != "HELLO WORLD" {
		t.Errorf("expected reference passthrough, got %+v", eng.lastRef)
	}
}
