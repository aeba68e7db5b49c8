package catalog

import (
	"sort"

	"github.com/sampler-labs/sampler/internal/provider"
	"github.com/sampler-labs/sampler/internal/sample"
)

// Project groups the samples owned by one provider. Samples are grouped by
// their full namespace; groups and the samples inside them keep insertion
// order.
type Project struct {
	Name        string
	Namespace   string
	WelcomePage string

	groups map[string][]sample.Sample
	order  []string
}

// NewProject creates an empty project from provider metadata.
func NewProject(m provider.Metadata) *Project {
	return &Project{
		Name:        m.Name,
		Namespace:   m.Namespace,
		WelcomePage: m.WelcomePage,
		groups:      make(map[string][]sample.Sample),
	}
}

// AddSample appends s to the group for namespace.
func (p *Project) AddSample(namespace string, s sample.Sample) {
	if _, ok := p.groups[namespace]; !ok {
		p.order = append(p.order, namespace)
	}
	p.groups[namespace] = append(p.groups[namespace], s)
}

// Namespaces returns the sample groups in the order they were first filled.
func (p *Project) Namespaces() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Samples returns the samples filed under namespace.
func (p *Project) Samples(namespace string) []sample.Sample {
	group := p.groups[namespace]
	out := make([]sample.Sample, len(group))
	copy(out, group)
	return out
}

// Groups returns a copy of the namespace → samples mapping.
func (p *Project) Groups() map[string][]sample.Sample {
	out := make(map[string][]sample.Sample, len(p.groups))
	for ns := range p.groups {
		out[ns] = p.Samples(ns)
	}
	return out
}

// Len returns the total number of samples in the project.
func (p *Project) Len() int {
	n := 0
	for _, g := range p.groups {
		n += len(g)
	}
	return n
}

func (p *Project) clone() *Project {
	c := &Project{
		Name:        p.Name,
		Namespace:   p.Namespace,
		WelcomePage: p.WelcomePage,
		groups:      p.Groups(),
		order:       p.Namespaces(),
	}
	return c
}

// Catalog maps project display names to projects.
type Catalog map[string]*Project

// Names returns the project names, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of samples across all projects. A sample filed
// under two projects counts twice.
func (c Catalog) Len() int {
	n := 0
	for _, p := range c {
		n += p.Len()
	}
	return n
}
