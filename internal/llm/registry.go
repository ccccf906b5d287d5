package llm

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps provider identifiers to capability factories. It is an open
// registry: built-ins are registered at process start, and plugins may call
// Register with their own ids before the first resolution.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces a factory for the given provider id.
// Re-registering an existing id is allowed; the last write wins. This
// supports test doubles and plugin override.
func (r *Registry) Register(id string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
}

// Resolve looks up the provider id and constructs a Generator from the
// given configuration. Unregistered ids fail with ErrUnknownProvider;
// factory failures surface as *ConstructionError wrapping the cause.
func (r *Registry) Resolve(id string, cfg Config) (Generator, error) {
	r.mu.Lock()
	factory, ok := r.factories[id]
	r.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("provider %q: %w", id, ErrUnknownProvider)
	}

	gen, err := factory(cfg)
	if err != nil {
		return nil, &ConstructionError{Provider: id, Err: err}
	}
	return gen, nil
}

// Providers returns the registered provider ids in sorted order.
func (r *Registry) Providers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
