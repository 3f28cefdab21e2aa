// Package registry provides a global registry for render backend factories.
// Backends register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

// Backend is a render surface together with the input source that belongs
// to the same terminal.
type Backend interface {
	frogger.Surface
	frogger.KeySource
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory creates a new backend for the given runtime config.
type Factory func(cfg core.RuntimeConfig) (Backend, error)

type entry struct {
	title   string
	factory Factory
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	backends[id] = entry{title: title, factory: f}
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for id, e := range backends {
		result = append(result, BackendInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, cfg core.RuntimeConfig) (Backend, error) {
	mu.RLock()
	e, ok := backends[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	b, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create backend %q: %w", id, err)
	}
	return b, nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[id]
	return ok
}
