package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeFlusher struct {
	calls int
	err   error
}

func (f *fakeFlusher) ForceFlush(_ context.Context) error {
	f.calls++
	return f.err
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("decodebatch")
	if cfg.ServiceName != "decodebatch" {
		t.Errorf("expected service name 'decodebatch', got %q", cfg.ServiceName)
	}
	if cfg.Endpoint == "" {
		t.Error("expected default endpoint")
	}
	if cfg.Interval <= 0 {
		t.Error("expected positive default interval")
	}
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("decodebatch")
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected full sampling by default, got %v", cfg.SampleRate)
	}
}

func TestNewRunMetrics(t *testing.T) {
	// The global meter provider defaults to a no-op implementation, which
	// still hands out working instruments.
	m, err := NewRunMetrics(Meter("test"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	m.RecordDecode(ctx, "audio", "ok", 120*time.Millisecond)
	m.RecordError(ctx, "INPUT_UNREADABLE")

	if err := m.Flush(ctx); err != nil {
		t.Errorf("expected nil-flusher Flush to be a no-op, got %v", err)
	}
}

func TestRunMetrics_Flush(t *testing.T) {
	f := &fakeFlusher{}
	m, err := NewRunMetrics(Meter("test"), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Flush(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.calls != 1 {
		t.Errorf("expected one flush call, got %d", f.calls)
	}

	f.err = errors.New("exporter down")
	if err := m.Flush(context.Background()); err == nil {
		t.Error("expected flush error to propagate")
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), SpanDecode)
	defer span.End()
	if ctx == nil {
		t.Fatal("expected context")
	}
	// No tracer provider is installed in tests; recording must be safely off.
	SetSpanError(ctx, errors.New("decode failed"))
}
