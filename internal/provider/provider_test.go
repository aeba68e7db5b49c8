package provider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterPreservesOrder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(Metadata{Name: "First", Namespace: "a"})
	Register(Metadata{Name: "Second", Namespace: "b", Source: "manifests"})

	got := Registered()
	require.Len(t, got, 2)
	require.Equal(t, "First", got[0].Name)
	require.Equal(t, "Second", got[1].Name)
	require.Equal(t, SourceBuiltin, got[0].Source)
	require.Equal(t, "manifests", got[1].Source, "explicit Source overwritten")
}

func TestRegisteredReturnsCopy(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(Metadata{Name: "Only", Namespace: "x"})
	got := Registered()
	got[0].Name = "Mutated"
	require.Equal(t, "Only", Registered()[0].Name)
}
