package registry

import (
	"reflect"
	"sort"
	"sync"
)

// Registry holds name → type registrations. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Register binds name to the type of prototype. Pass a typed nil pointer for
// pointer-receiver samples ((*Button)(nil)), a value for value types, or a
// pointer to an interface ((*sample.Sample)(nil)) to register the interface
// itself. Registering a name again replaces the earlier type.
func (r *Registry) Register(name string, prototype any) {
	t := reflect.TypeOf(prototype)
	if t == nil {
		return
	}
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Interface {
		t = t.Elem()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = t
}

// Resolve looks up the type registered under name.
func (r *Registry) Resolve(name string) (ResolvedType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	if !ok {
		return ResolvedType{}, false
	}
	return ResolvedType{Name: name, Type: t}, true
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Default is the process-wide registry that bundled projects register into
// from their init functions.
var Default = New()

// Register adds a registration to Default.
func Register(name string, prototype any) {
	Default.Register(name, prototype)
}

// Resolve looks name up in Default.
func Resolve(name string) (ResolvedType, bool) {
	return Default.Resolve(name)
}
