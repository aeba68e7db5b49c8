// Package registry maps fully-qualified sample type names to Go types and
// constructs samples from them. It is the resolve/instantiate collaborator of
// the catalog builder: a name that was never registered does not resolve, and
// a registered type is constructed from its zero value.
package registry
