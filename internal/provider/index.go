package provider

import "sort"

// Index maps namespace keys to provider metadata. It is never modified after
// BuildIndex returns and is safe for concurrent readers.
type Index struct {
	byKey map[string]Metadata
	keys  []string // sorted
}

// BuildIndex indexes providers by namespace key. When two providers share a
// key, the later one replaces the earlier one. An empty input yields an
// empty index.
func BuildIndex(providers []Metadata) *Index {
	byKey := make(map[string]Metadata, len(providers))
	for _, p := range providers {
		byKey[p.Namespace] = p
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Index{byKey: byKey, keys: keys}
}

// Lookup returns the provider registered under key.
func (i *Index) Lookup(key string) (Metadata, bool) {
	if i == nil {
		return Metadata{}, false
	}
	m, ok := i.byKey[key]
	return m, ok
}

// Keys returns the namespace keys in sorted order.
func (i *Index) Keys() []string {
	if i == nil {
		return nil
	}
	out := make([]string, len(i.keys))
	copy(out, i.keys)
	return out
}

// Len returns the number of distinct namespace keys.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.keys)
}

// Providers returns the indexed metadata ordered by namespace key.
func (i *Index) Providers() []Metadata {
	if i == nil {
		return nil
	}
	out := make([]Metadata, 0, len(i.keys))
	for _, k := range i.keys {
		out = append(out, i.byKey[k])
	}
	return out
}
