// Package sample defines what a catalog entry is: anything that can label
// itself, describe itself, produce its content, and say whether it should be
// listed. It also defines the reserved Empty placeholder that never appears
// in a catalog.
package sample

import "reflect"

// Sample is the capability set every catalogued implementation provides.
type Sample interface {
	// Name is the display label shown in the catalog.
	Name() string
	// Description is a short summary of what the sample demonstrates.
	Description() string
	// Content produces the body shown when the sample is opened.
	Content() string
	// Visible reports whether the sample should be listed at all.
	Visible() bool
}

// Initializer is implemented by samples whose construction can fail.
// Init runs right after the zero value is allocated.
type Initializer interface {
	Init() error
}

// Base gives embedding types the default behavior: listed, with no
// description or content.
type Base struct{}

func (Base) Description() string { return "" }
func (Base) Content() string     { return "" }
func (Base) Visible() bool       { return true }

// Empty is the welcome placeholder shown when nothing is selected.
type Empty struct {
	Base
	Title string
}

func (e *Empty) Name() string {
	if e.Title == "" {
		return "Welcome"
	}
	return e.Title
}

// Type is the reflect.Type of the Sample interface.
var Type = reflect.TypeOf((*Sample)(nil)).Elem()

// EmptyType is the reflect.Type of the placeholder.
var EmptyType = reflect.TypeOf((*Empty)(nil))

// IsPlaceholder reports whether t is the placeholder type. This is an
// identity check; types embedding Empty are not placeholders.
func IsPlaceholder(t reflect.Type) bool {
	return t == EmptyType || (t != nil && t.Kind() == reflect.Struct && reflect.PointerTo(t) == EmptyType)
}
