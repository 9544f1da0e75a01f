package provider

import (
	"context"
	"fmt"
	"testing"
)

type stubProvider struct {
	name      string
	available bool
}

func (s *stubProvider) Name() string                       { return s.name }
func (s *stubProvider) IsAvailable(_ context.Context) bool { return s.available }

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	reg.RegisterFactory("stub", func(cfg map[string]any) (*stubProvider, error) {
		name, _ := cfg["name"].(string)
		return &stubProvider{name: name, available: true}, nil
	})

	p, err := reg.Create("stub", map[string]any{"name": "engine-a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "engine-a" {
		t.Errorf("expected name 'engine-a', got %q", p.Name())
	}
}

func TestRegistry_CreateUnknownFactory(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	if _, err := reg.Create("missing", nil); err == nil {
		t.Fatal("expected error for unregistered factory")
	}
}

func TestRegistry_FactoryError(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	reg.RegisterFactory("bad", func(_ map[string]any) (*stubProvider, error) {
		return nil, fmt.Errorf("bad config")
	})
	if _, err := reg.Create("bad", nil); err == nil {
		t.Fatal("expected factory error to propagate")
	}
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	reg.RegisterFactory("b", func(_ map[string]any) (*stubProvider, error) { return &stubProvider{}, nil })
	reg.RegisterFactory("a", func(_ map[string]any) (*stubProvider, error) { return &stubProvider{}, nil })

	names := reg.List()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted [a b], got %v", names)
	}
}
