package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/structdict/pkg/record"
)

// Registry manages the string-keyed record variants available by name.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]*record.Variant[string]
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		variants: make(map[string]*record.Variant[string]),
	}
}

// Register adds a variant under its name.
// If a variant with the same name exists, it is overwritten.
func (r *Registry) Register(v *record.Variant[string]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[v.Name()] = v
}

// Lookup returns the variant registered under name.
func (r *Registry) Lookup(name string) (*record.Variant[string], error) {
	r.mu.RLock()
	v, ok := r.variants[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("variant not found: %s", name)
	}
	return v, nil
}

// Names returns the registered variant names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Each replaces every registered variant with fn(variant), e.g. to attach
// hooks to all of them.
func (r *Registry) Each(fn func(*record.Variant[string]) *record.Variant[string]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, v := range r.variants {
		r.variants[name] = fn(v)
	}
}
