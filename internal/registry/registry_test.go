package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/horse-jump/internal/core"
)

type stubBackend struct {
	opts Options
}

func (b *stubBackend) Run(ctx context.Context, s Session) (core.GameState, error) {
	return s.State(), nil
}

// registerOnce keeps the tests repeatable with -count.
func registerOnce(name string, f Factory) {
	if !Exists(name) {
		Register(name, f)
	}
}

func TestRegisterAndCreate(t *testing.T) {
	registerOnce("stub-create", func(opts Options) Backend {
		return &stubBackend{opts: opts}
	})

	if !Exists("stub-create") {
		t.Fatal("registered backend should exist")
	}

	b, err := Create("stub-create", Options{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	stub, ok := b.(*stubBackend)
	if !ok {
		t.Fatalf("Create returned %T", b)
	}
	if stub.opts.Clock == nil {
		t.Error("Create should default the clock")
	}
	if stub.opts.Logger == nil {
		t.Error("Create should default the logger")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-backend", Options{}); err == nil {
		t.Error("expected error for unknown backend")
	}
	if Exists("no-such-backend") {
		t.Error("unknown backend should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(opts Options) Backend { return &stubBackend{} }
	registerOnce("stub-dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-dup", f)
}

func TestListSorted(t *testing.T) {
	f := func(opts Options) Backend { return &stubBackend{} }
	registerOnce("stub-z", f)
	registerOnce("stub-a", f)

	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("List not sorted: %v", names)
		}
	}

	found := 0
	for _, n := range names {
		if n == "stub-a" || n == "stub-z" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("List() = %v, missing registered stubs", names)
	}
}
