// Package registry provides a global registry for run backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
)

// RunOptions carries everything a backend needs to drive a session.
type RunOptions struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Backend drives a game session: it owns the clock, delivers input and
// presents the rendered scene.
type Backend interface {
	// ID returns a unique identifier (e.g., "tui", "window").
	// Used for the --backend flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Interactive reports whether the backend takes user input.
	// Non-interactive backends are only meant for simulation.
	Interactive() bool

	// Run plays until the user quits, the context is cancelled or the
	// runtime tick limit is reached.
	Run(ctx context.Context, opts RunOptions) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID          string
	Title       string
	Interactive bool
}

// ErrNotInteractive is returned by CreateInteractive for simulation-only backends.
var ErrNotInteractive = errors.New("registry: backend is not interactive")

// Factory creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]BackendInfo)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f

	b := f()
	infos[id] = BackendInfo{ID: id, Title: b.Title(), Interactive: b.Interactive()}
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// CreateInteractive is Create restricted to backends that take user input.
func CreateInteractive(id string) (Backend, error) {
	b, err := Create(id)
	if err != nil {
		return nil, err
	}
	if !b.Interactive() {
		return nil, fmt.Errorf("%w: %q", ErrNotInteractive, id)
	}
	return b, nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a backend. Only used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(infos, id)
}
