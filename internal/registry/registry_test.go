package registry

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sampler-labs/sampler/internal/sample"
)

type button struct {
	sample.Base
	ready bool
}

func (b *button) Name() string { return "Button" }
func (b *button) Init() error  { b.ready = true; return nil }

type label struct{ sample.Base }

func (label) Name() string { return "Label" }

type broken struct{ sample.Base }

func (*broken) Name() string { return "Broken" }
func (*broken) Init() error  { return errors.New("missing stylesheet") }

type panics struct{ sample.Base }

func (*panics) Name() string { return "Panics" }
func (*panics) Init() error  { panic("boom") }

type notASample struct{}

func TestNamespaceOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"org.acme.widgets.button.HelloButton", "org.acme.widgets.button"},
		{"a.B", "a"},
		{"Standalone", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NamespaceOf(tt.name); got != tt.want {
				t.Errorf("NamespaceOf(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolvedTypeNames(t *testing.T) {
	rt := ResolvedType{Name: "org.acme.widgets.HelloSlider"}
	if rt.Namespace() != "org.acme.widgets" {
		t.Errorf("Namespace() = %q", rt.Namespace())
	}
	if rt.SimpleName() != "HelloSlider" {
		t.Errorf("SimpleName() = %q", rt.SimpleName())
	}
}

func TestRegisterAndResolve(t *testing.T) {
	r := New()
	r.Register("org.acme.Button", (*button)(nil))
	r.Register("org.acme.Label", label{})
	r.Register("org.acme.Abstract", (*sample.Sample)(nil))

	rt, ok := r.Resolve("org.acme.Button")
	if !ok {
		t.Fatal("Resolve(org.acme.Button) returned false")
	}
	if rt.Type != reflect.TypeOf(&button{}) {
		t.Errorf("Type = %v, want *button", rt.Type)
	}

	abstract, ok := r.Resolve("org.acme.Abstract")
	if !ok {
		t.Fatal("Resolve(org.acme.Abstract) returned false")
	}
	if abstract.Type.Kind() != reflect.Interface {
		t.Errorf("abstract Kind = %v, want Interface", abstract.Type.Kind())
	}

	if _, ok := r.Resolve("org.acme.Missing"); ok {
		t.Error("Resolve of unregistered name returned true")
	}

	if got := r.Names(); len(got) != 3 || got[0] != "org.acme.Abstract" {
		t.Errorf("Names() = %v", got)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := New()
	r.Register("x.Y", (*button)(nil))
	r.Register("x.Y", label{})
	rt, _ := r.Resolve("x.Y")
	if rt.Type != reflect.TypeOf(label{}) {
		t.Errorf("Type = %v, want label", rt.Type)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegisterNilIgnored(t *testing.T) {
	r := New()
	r.Register("x.Nil", nil)
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestInstantiate(t *testing.T) {
	s, err := Instantiate(ResolvedType{Name: "org.acme.Button", Type: reflect.TypeOf(&button{})})
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	b, ok := s.(*button)
	if !ok {
		t.Fatalf("got %T, want *button", s)
	}
	if !b.ready {
		t.Error("Init was not called")
	}

	s, err = Instantiate(ResolvedType{Name: "org.acme.Label", Type: reflect.TypeOf(label{})})
	if err != nil {
		t.Fatalf("Instantiate value type: %v", err)
	}
	if s.Name() != "Label" {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestInstantiateFailures(t *testing.T) {
	tests := []struct {
		name    string
		typ     reflect.Type
		wantErr error
		wantMsg string
	}{
		{"abstract", sample.Type, ErrAbstract, ""},
		{"not a sample", reflect.TypeOf(&notASample{}), ErrNotSample, ""},
		{"init error", reflect.TypeOf(&broken{}), nil, "missing stylesheet"},
		{"init panic", reflect.TypeOf(&panics{}), nil, "panic: boom"},
		{"no type", nil, nil, "no type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Instantiate(ResolvedType{Name: "org.acme." + tt.name, Type: tt.typ})
			if err == nil {
				t.Fatalf("expected error, got sample %v", s)
			}
			if s != nil {
				t.Errorf("sample = %v, want nil", s)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	Register("test.registry.DefaultButton", (*button)(nil))
	t.Cleanup(func() {
		Default.mu.Lock()
		delete(Default.types, "test.registry.DefaultButton")
		Default.mu.Unlock()
	})
	if _, ok := Resolve("test.registry.DefaultButton"); !ok {
		t.Fatal("Resolve on Default failed")
	}
}
