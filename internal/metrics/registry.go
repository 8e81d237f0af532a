package metrics

import "fmt"

// Registry maps source IDs to factories. Sources are created per slot
// so that stateful implementations never share baselines between
// slots or panels.
type Registry struct {
	order     []string
	factories map[string]func() Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]func() Source{}}
}

// Register adds a factory under the given ID, replacing any previous
// registration while keeping its position in the ID order.
func (r *Registry) Register(id string, factory func() Source) {
	if _, exists := r.factories[id]; !exists {
		r.order = append(r.order, id)
	}
	r.factories[id] = factory
}

// Create builds a fresh source instance for the given ID.
func (r *Registry) Create(id string) (Source, error) {
	factory, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", id)
	}
	return factory(), nil
}

// Has reports whether an ID is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.factories[id]
	return ok
}

// IDs returns the registered IDs in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DisplayName returns the picker name for an ID, or the ID itself when
// it is not registered.
func (r *Registry) DisplayName(id string) string {
	factory, ok := r.factories[id]
	if !ok {
		return id
	}
	return factory().Name()
}

// DefaultRegistry returns a registry with every built-in source.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("cpu", func() Source { return NewCPUSource() })
	r.Register("memory", func() Source { return NewMemorySource() })
	r.Register("disk", func() Source { return NewDiskSource() })
	r.Register("network", func() Source { return NewNetSource() })
	r.Register("host", func() Source { return NewHostSource() })
	return r
}
