// Package registry provides a global registry for terminal backends.
// Backends register themselves in init() functions, allowing the command
// to pick one by name from config without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horse-jump/internal/core"
)

// Session is a running game as seen by a backend.
// The game holds all logic; the backend owns timing, input and output.
type Session interface {
	// HandleAction applies one polled key.
	HandleAction(a core.Action)

	// Update advances the simulation by one tick.
	Update()

	// Flush draws everything queued since the last flush onto dst.
	Flush(dst core.Surface)

	// Interval returns how long to sleep before the next tick.
	Interval() time.Duration

	// CrashPause returns how long the last frame stays up after a collision.
	CrashPause() time.Duration

	// Playable reports whether the session is still running.
	Playable() bool

	// Stop ends the session early, as on an interrupt.
	Stop()

	// State returns the current score and end flags.
	State() core.GameState
}

// Backend drives a session on the real terminal until it stops.
type Backend interface {
	// Run blocks until the session stops or ctx is cancelled,
	// and restores the terminal before returning.
	Run(ctx context.Context, s Session) (core.GameState, error)
}

// Options are passed to every backend factory.
type Options struct {
	Logger *log.Logger
	Clock  core.Clock
	Width  int // Terminal size the session was set up for
	Height int
}

// Factory creates a backend.
type Factory func(opts Options) Backend

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	factories[name] = f
}

// List returns the names of all registered backends, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates a backend by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (Backend, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return f(opts), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
