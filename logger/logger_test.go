package logger

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("decodebatch")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "decodebatch" {
		t.Errorf("expected service 'decodebatch', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "decodebatch")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	if l := New(cfg, "test"); l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	if l := NewFromEnv("env-svc"); l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc")
	cl := l.WithComponent("batch")
	if cl == nil || cl == l {
		t.Fatal("expected a new component-tagged logger")
	}
}

func TestWithRunID(t *testing.T) {
	l := NewDefault("svc")
	if rl := l.WithRunID("run-123"); rl == nil || rl == l {
		t.Fatal("expected a new run-tagged logger")
	}
}

func TestWithContext(t *testing.T) {
	l := NewDefault("svc")
	ctx := context.WithValue(context.Background(), contextKey("trace_id"), "t-1")
	ctx = context.WithValue(ctx, contextKey("run_id"), "r-1")
	if cl := l.WithContext(ctx); cl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l := NewDefault("svc")
	if fl := l.WithFields(map[string]interface{}{"key": "value"}); fl == nil {
		t.Fatal("expected non-nil logger")
	}
	if el := l.WithError(fmt.Errorf("boom")); el == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		input []interface{}
		want  map[string]interface{}
	}{
		{"pairs", []interface{}{"a", 1, "b", "two"}, map[string]interface{}{"a": 1, "b": "two"}},
		{"odd trailing key dropped", []interface{}{"a", 1, "dangling"}, map[string]interface{}{"a": 1}},
		{"non-string key skipped", []interface{}{42, "x", "b", 2}, map[string]interface{}{"b": 2}},
		{"empty", nil, map[string]interface{}{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Fields(tc.input...)
			if len(result) != len(tc.want) {
				t.Fatalf("expected %d fields, got %v", len(tc.want), result)
			}
			for k, v := range tc.want {
				if result[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, result[k], v)
				}
			}
		})
	}
}

func TestErrorFields(t *testing.T) {
	fields := ErrorFields("decode", fmt.Errorf("no such file"))
	if fields[FieldOperation] != "decode" {
		t.Errorf("expected operation 'decode', got %v", fields[FieldOperation])
	}
	if fields[FieldError] != "no such file" {
		t.Errorf("expected error message, got %v", fields[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	fields := DurationFields("decode", 1500*time.Millisecond)
	if fields[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", fields[FieldDuration])
	}
}

func TestMergeWithError(t *testing.T) {
	fields := MergeWithError(map[string]interface{}{"a": 1}, fmt.Errorf("x"))
	if fields["a"] != 1 || fields[FieldError] != "x" {
		t.Errorf("unexpected merge result: %v", fields)
	}
	if got := MergeWithError(nil, fmt.Errorf("y")); got[FieldError] != "y" {
		t.Errorf("expected error field on nil map, got %v", got)
	}
}

func TestRegistry(t *testing.T) {
	l := NewDefault("svc")
	Register("batch", l)
	if got := Get("batch"); got != l {
		t.Error("expected registered logger back")
	}
	if got := Get("unregistered"); got == nil {
		t.Error("expected fallback logger for unregistered name")
	}
}
