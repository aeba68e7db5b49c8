package catalog

import (
	"reflect"

	"github.com/sampler-labs/sampler/internal/sample"
)

// Rejection says why a resolved type cannot be catalogued.
type Rejection int

const (
	Eligible Rejection = iota
	RejectNotSample
	RejectAbstract
	RejectPlaceholder
)

func (r Rejection) String() string {
	switch r {
	case Eligible:
		return "eligible"
	case RejectNotSample:
		return "not a sample"
	case RejectAbstract:
		return "abstract"
	case RejectPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Eligibility checks the structural rules for t: it must implement
// sample.Sample, must be concrete, and must not be the placeholder type.
func Eligibility(t reflect.Type) Rejection {
	if t == nil {
		return RejectNotSample
	}
	if t.Kind() == reflect.Interface {
		return RejectAbstract
	}
	if sample.IsPlaceholder(t) {
		return RejectPlaceholder
	}
	if !t.Implements(sample.Type) {
		return RejectNotSample
	}
	return Eligible
}
