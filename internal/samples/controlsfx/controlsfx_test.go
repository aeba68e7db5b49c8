package controlsfx

import (
	"testing"

	"github.com/sampler-labs/sampler/internal/catalog"
	"github.com/sampler-labs/sampler/internal/provider"
	"github.com/sampler-labs/sampler/internal/registry"
	"github.com/stretchr/testify/require"
)

func TestProviderRegistered(t *testing.T) {
	var found bool
	for _, m := range provider.Registered() {
		if m.Name == ProjectName {
			found = true
			require.Equal(t, Namespace, m.Namespace)
			require.Equal(t, WelcomePage, m.WelcomePage)
			require.Equal(t, provider.SourceBuiltin, m.Source)
		}
	}
	require.True(t, found, "ControlsFX provider not registered")
}

func TestBundledCatalog(t *testing.T) {
	idx := provider.BuildIndex(provider.Registered())
	b := catalog.NewBuilder()

	cat := b.DiscoverSamples(Candidates(), idx, registry.Resolve, registry.Instantiate)

	require.Equal(t, []string{ProjectName}, cat.Names())
	p := cat[ProjectName]
	require.Equal(t, WelcomePage, p.WelcomePage)
	require.Equal(t, 10, p.Len(), "eleven registered samples minus the hidden decorator")

	require.Equal(t, []string{
		Namespace + ".actions",
		Namespace + ".textfields",
		Namespace,
		Namespace + ".button",
		Namespace + ".checked",
	}, p.Namespaces())

	report := b.LastRun()
	require.ElementsMatch(t, []string{
		Namespace + ".actions.HelloActionProxy",
		Namespace + ".button.HelloButtonBar",
		Namespace + ".checked.HelloCheckTreeView",
		Namespace + ".dialogs.HelloDialogs",
		Namespace + ".HelloGridView",
		Namespace + ".HelloSpreadsheetView",
	}, report.Unresolved)
	require.Equal(t, 1, report.Hidden)
	require.Equal(t, 1, report.Rejected[catalog.RejectPlaceholder])
	require.Equal(t, 1, report.Rejected[catalog.RejectAbstract])
	require.Empty(t, report.Failed)
}

func TestSamplesDescribeThemselves(t *testing.T) {
	for _, name := range Candidates() {
		rt, ok := registry.Resolve(name)
		if !ok || catalog.Eligibility(rt.Type) != catalog.Eligible {
			continue
		}
		s, err := registry.Instantiate(rt)
		require.NoError(t, err, name)
		require.NotEmpty(t, s.Name(), name)
	}
}
