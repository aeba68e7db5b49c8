package registry

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sampler-labs/sampler/internal/sample"
)

var (
	// ErrAbstract is returned when asked to construct an interface type.
	ErrAbstract = errors.New("type is abstract")
	// ErrNotSample is returned when the constructed value is not a sample.
	ErrNotSample = errors.New("type does not implement sample.Sample")
)

// Instantiate constructs a sample from the zero value of rt.Type and runs its
// Init method if it has one. A panic during construction is returned as an
// error.
func Instantiate(rt ResolvedType) (s sample.Sample, err error) {
	if rt.Type == nil {
		return nil, fmt.Errorf("instantiating %s: no type", rt.Name)
	}
	if rt.Type.Kind() == reflect.Interface {
		return nil, fmt.Errorf("instantiating %s: %w", rt.Name, ErrAbstract)
	}

	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("instantiating %s: panic: %v", rt.Name, r)
		}
	}()

	var v reflect.Value
	if rt.Type.Kind() == reflect.Pointer {
		v = reflect.New(rt.Type.Elem())
	} else {
		v = reflect.New(rt.Type).Elem()
	}

	s, ok := v.Interface().(sample.Sample)
	if !ok {
		return nil, fmt.Errorf("instantiating %s: %w", rt.Name, ErrNotSample)
	}

	if initer, ok := s.(sample.Initializer); ok {
		if err := initer.Init(); err != nil {
			return nil, fmt.Errorf("initializing %s: %w", rt.Name, err)
		}
	}
	return s, nil
}
