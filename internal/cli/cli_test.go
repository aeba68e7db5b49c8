package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sampler-labs/sampler/internal/samples/controlsfx"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args against an empty home
// directory and returns everything written to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SAMPLER_PROVIDER_DIRS", "")
	t.Setenv("SAMPLER_CANDIDATES_FILE", "")
	resetState()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append([]string{"--log-level", "error", "--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetState() {
	indexOnce = sync.Once{}
	index, indexErr = nil, nil

	projectsDirs, projectsJSON = nil, false
	catalogDirs, catalogCandidates, catalogAll, catalogJSON = nil, "", false, false
	samplesCandidates, samplesAll, samplesJSON = "", false, false
	searchProjectFilter, searchGroupFilter, searchDirs = "", "", nil
	searchCandidates, searchAll, searchJSON = "", false, false
	checkConfig, checkProviders, checkCandidates, doctorDirs = false, false, false, nil
	versionShort, versionJSON = false, false
}

func TestVersionShort(t *testing.T) {
	out, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, buildVersion+"\n", out)
}

func TestVersionJSON(t *testing.T) {
	out, err := executeCommand(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, buildVersion, info["version"])
}

func TestProjectsBuiltin(t *testing.T) {
	out, err := executeCommand(t, "projects")
	require.NoError(t, err)
	require.Contains(t, out, controlsfx.Namespace)
	require.Contains(t, out, controlsfx.ProjectName)
	require.Contains(t, out, "builtin")
}

func TestProjectsWithProviderDir(t *testing.T) {
	out, err := executeCommand(t, "projects", "--json", "--provider-dir", "../provider/testdata/providers")
	require.NoError(t, err)

	var got []struct {
		Name      string `json:"name"`
		Namespace string `json:"namespace"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	namespaces := make(map[string]string)
	for _, p := range got {
		namespaces[p.Namespace] = p.Name
	}
	require.Equal(t, controlsfx.ProjectName, namespaces[controlsfx.Namespace])
	require.Equal(t, "Widgets", namespaces["org.acme.widgets"])
}

func TestCatalogDefaultCandidates(t *testing.T) {
	out, err := executeCommand(t, "catalog", "--json")
	require.NoError(t, err)

	var got catalogDoc
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Projects, 1)

	p := got.Projects[0]
	require.Equal(t, controlsfx.ProjectName, p.Name)
	require.Equal(t, controlsfx.WelcomePage, p.WelcomePage)

	total := 0
	for _, g := range p.Groups {
		total += len(g.Samples)
		for _, s := range g.Samples {
			require.NotEqual(t, "Decorator", s.Name, "hidden sample listed")
		}
	}
	require.Equal(t, 10, total)
	require.Equal(t, 10, got.Report.Placements)
	require.Len(t, got.Report.Unresolved, 6)
	require.Equal(t, 1, got.Report.Hidden)
	require.Equal(t, 1, got.Report.Rejected["placeholder"])
	require.Equal(t, 1, got.Report.Rejected["abstract"])
	require.NotEmpty(t, got.Report.RunID)
}

func TestCatalogCandidatesFile(t *testing.T) {
	out, err := executeCommand(t, "catalog", "--json", "--candidates", "testdata/candidates.yaml")
	require.NoError(t, err)

	var got catalogDoc
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Projects, 1)
	require.Len(t, got.Projects[0].Groups, 1)

	g := got.Projects[0].Groups[0]
	require.Equal(t, controlsfx.Namespace+".button", g.Namespace)
	require.Equal(t, "SegmentedButton", g.Samples[0].Name)
	require.Equal(t, "BreadCrumbBar", g.Samples[1].Name)
	require.Equal(t, []string{controlsfx.Namespace + ".button.HelloButtonBar"}, got.Report.Unresolved)
}

func TestCatalogRejectsProjectManifestAsCandidates(t *testing.T) {
	_, err := executeCommand(t, "catalog", "--candidates", "../manifest/testdata/valid-project.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a candidates manifest")
}

func TestCatalogTree(t *testing.T) {
	out, err := executeCommand(t, "catalog")
	require.NoError(t, err)
	require.Contains(t, out, controlsfx.ProjectName)
	require.Contains(t, out, "textfields")
	require.Contains(t, out, "AutoComplete TextField")
	require.Contains(t, out, "19 candidates: 10 placed")
	require.NotContains(t, out, "Decorator")
}

func TestSamplesClassification(t *testing.T) {
	out, err := executeCommand(t, "samples", "--json")
	require.NoError(t, err)

	var rows []candidateStatus
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	status := make(map[string]string)
	for _, r := range rows {
		status[r.Candidate] = r.Status
	}
	require.Equal(t, "ok", status[controlsfx.Namespace+".HelloRating"])
	require.Equal(t, "hidden", status[controlsfx.Namespace+".HelloDecorator"])
	require.Equal(t, "placeholder", status[controlsfx.WelcomePage])
	require.Equal(t, "abstract", status[controlsfx.Namespace+".ControlSample"])
	require.Equal(t, "unresolved", status[controlsfx.Namespace+".HelloGridView"])
}

func TestSearch(t *testing.T) {
	out, err := executeCommand(t, "search", "check")
	require.NoError(t, err)
	require.Contains(t, out, "CheckComboBox")
	require.Contains(t, out, "CheckListView")
	require.NotContains(t, out, "Rating")

	out, err = executeCommand(t, "search", "--group", "button", "--json")
	require.NoError(t, err)

	var entries []searchEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, "button", e.Group)
	}

	out, err = executeCommand(t, "search", "nothing-like-this")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "No samples found"))
}

func TestValidate(t *testing.T) {
	out, err := executeCommand(t, "validate", "../manifest/testdata/valid-project.yaml", "../manifest/testdata/valid-candidates.yaml")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "[ OK ]"))
	require.Contains(t, out, "(project Widgets 1.2.0)")
	require.Contains(t, out, "(candidates acme-samples 1.0.0)")

	out, err = executeCommand(t, "validate", "../manifest/testdata/valid-project.yaml", "../manifest/testdata/invalid-missing-namespace.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 manifests invalid")
	require.Contains(t, out, "[FAIL]")
}

func TestDoctor(t *testing.T) {
	out, err := executeCommand(t, "doctor")
	require.NoError(t, err)
	require.Contains(t, out, "Config check:")
	require.Contains(t, out, "1 projects indexed")
	require.Contains(t, out, "10 of 19 candidates usable")

	t.Setenv("SAMPLER_CACHE", "false")
	out, err = executeCommand(t, "doctor", "--check-config")
	require.NoError(t, err)
	require.Contains(t, out, "cache overridden by $SAMPLER_CACHE")

	out, err = executeCommand(t, "doctor", "--check-providers", "--provider-dir", "does-not-exist")
	require.NoError(t, err)
	require.Contains(t, out, "[MISS]")
	require.NotContains(t, out, "Config check:")
}

func TestConfigSetGet(t *testing.T) {
	_, err := executeCommand(t, "config", "set", "theme", "dark")
	require.NoError(t, err)

	out, err := executeCommand(t, "config", "get", "theme")
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)
}

func TestProviderSourcesUniqueNames(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SAMPLER_PROVIDER_DIRS", "")

	a := filepath.Join(t.TempDir(), "a", "providers")
	b := filepath.Join(t.TempDir(), "b", "providers")
	sources := providerSources([]string{a, b, a})

	require.Len(t, sources, 2)
	require.Equal(t, "providers", sources[0].Name)
	require.Equal(t, "b/providers", sources[1].Name)
	require.Equal(t, b, sources[1].BasePath)
}
