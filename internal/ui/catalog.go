package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sampler-labs/sampler/internal/catalog"
	"github.com/sampler-labs/sampler/internal/provider"
)

// RenderCatalog writes projects, their namespace groups and samples as a tree.
// Group names are shown relative to the project's namespace key.
func RenderCatalog(w io.Writer, cat catalog.Catalog, noColor bool) {
	if len(cat) == 0 {
		fmt.Fprintln(w, "No samples found.")
		return
	}

	project := newColor(noColor, color.Bold, color.FgGreen)
	group := newColor(noColor, color.FgCyan)
	dim := newColor(noColor, color.FgHiBlack)

	for _, name := range cat.Names() {
		p := cat[name]
		project.Fprint(w, p.Name)
		dim.Fprintf(w, "  (%s, %d samples)\n", p.Namespace, p.Len())
		if p.WelcomePage != "" {
			dim.Fprintf(w, "  welcome: %s\n", p.WelcomePage)
		}

		namespaces := p.Namespaces()
		for i, ns := range namespaces {
			lastGroup := i == len(namespaces)-1
			branch, indent := "├── ", "│   "
			if lastGroup {
				branch, indent = "└── ", "    "
			}
			group.Fprintln(w, "  "+branch+relativeNamespace(ns, p.Namespace))

			samples := p.Samples(ns)
			for j, s := range samples {
				leaf := "├── "
				if j == len(samples)-1 {
					leaf = "└── "
				}
				fmt.Fprint(w, "  "+indent+leaf+s.Name())
				if d := s.Description(); d != "" {
					dim.Fprint(w, "  "+d)
				}
				fmt.Fprintln(w)
			}
		}
	}
}

// relativeNamespace strips the project key from ns when ns starts with it.
func relativeNamespace(ns, key string) string {
	if ns == key {
		return "."
	}
	if strings.HasPrefix(ns, key+".") {
		return strings.TrimPrefix(ns, key+".")
	}
	return ns
}

// RenderProviders writes the provider index as a table.
func RenderProviders(w io.Writer, providers []provider.Metadata, noColor bool) {
	t := NewTable(w, noColor, "NAMESPACE", "PROJECT", "VERSION", "WELCOME PAGE", "SOURCE")
	for _, p := range providers {
		t.AddRow(p.Namespace, p.Name, orDash(p.Version), orDash(p.WelcomePage), p.Source)
	}
	t.Render()
}

// RenderReport writes the one-line run summary and any construction failures.
func RenderReport(w io.Writer, r catalog.Report, noColor bool) {
	dim := newColor(noColor, color.FgHiBlack)
	dim.Fprintln(w, r.Summary())

	warn := newColor(noColor, color.FgYellow)
	for _, f := range r.Failed {
		warn.Fprintf(w, "  failed: %s: %v\n", f.Candidate, f.Err)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
