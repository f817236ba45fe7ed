package schema

import (
	"sort"
	"sync"

	"github.com/go-drift/strata/pkg/core"
)

// Constructor creates a component from a node whose children are already
// built. It must always return a component; problems with individual
// properties are reported through in.Warnf.
type Constructor func(in *Input) core.Component

// Registry maps type names to constructors. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// DefaultRegistry returns a new registry holding the built-in types:
// VStack, HStack, ZStack, SplitView, Label, Button, Box and Image.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

// Register binds name to ctor, replacing any earlier binding.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	r.ctors[name] = ctor
	r.mu.Unlock()
}

// Lookup returns the constructor for name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[name]
	return ctor, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
