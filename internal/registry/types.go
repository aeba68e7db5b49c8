package registry

import (
	"reflect"
	"strings"
)

// ResolvedType is a candidate name bound to the Go type registered for it.
type ResolvedType struct {
	Name string       // e.g. "org.controlsfx.samples.button.HelloButtonBar"
	Type reflect.Type // registered type; an interface type for abstract entries
}

// Namespace returns the dotted path containing the type, i.e. the name
// without its last segment. Names without a dot live in the "" namespace.
func (r ResolvedType) Namespace() string {
	return NamespaceOf(r.Name)
}

// SimpleName returns the last dotted segment of the name.
func (r ResolvedType) SimpleName() string {
	if i := strings.LastIndexByte(r.Name, '.'); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// NamespaceOf returns name without its last dotted segment.
func NamespaceOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}
