package provider

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDiscoverCached_WritesAndReuses(t *testing.T) {
	srcDir := t.TempDir()
	writeProject(t, filepath.Join(srcDir, "widgets"), "Widgets", "org.acme.widgets")
	sources := []Source{{Name: "user", BasePath: srcDir}}
	cachePath := filepath.Join(t.TempDir(), "cache", "providers.json")

	first, err := DiscoverCached(sources, cachePath, "1.0.0", nil)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.FileExists(t, cachePath)

	cached, err := loadCache(cachePath)
	require.NoError(t, err)
	require.True(t, isCacheValid(cached, sources, "1.0.0"))

	second, err := DiscoverCached(sources, cachePath, "1.0.0", nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDiscoverCached_InvalidatedByNewProject(t *testing.T) {
	srcDir := t.TempDir()
	writeProject(t, filepath.Join(srcDir, "widgets"), "Widgets", "org.acme.widgets")
	sources := []Source{{Name: "user", BasePath: srcDir}}
	cachePath := filepath.Join(t.TempDir(), "providers.json")

	_, err := DiscoverCached(sources, cachePath, "1.0.0", nil)
	require.NoError(t, err)

	path := writeProject(t, filepath.Join(srcDir, "charts"), "Charts", "org.acme.charts")
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	found, err := DiscoverCached(sources, cachePath, "1.0.0", nil)
	require.NoError(t, err)
	require.Len(t, found, 2)
}

func TestIsCacheValid(t *testing.T) {
	srcDir := t.TempDir()
	sources := []Source{{Name: "user", BasePath: srcDir}}
	mods := map[string]int64{srcDir: latestMtime(srcDir)}

	tests := []struct {
		name    string
		cached  *CachedProviders
		version string
		want    bool
	}{
		{"nil", nil, "1.0.0", false},
		{"matching", &CachedProviders{SourceMods: mods, Version: "1.0.0"}, "1.0.0", true},
		{"other version", &CachedProviders{SourceMods: mods, Version: "0.9.0"}, "1.0.0", false},
		{"source list changed", &CachedProviders{SourceMods: map[string]int64{"other": 1}, Version: "1.0.0"}, "1.0.0", false},
		{"stale mtime", &CachedProviders{SourceMods: map[string]int64{srcDir: 1}, Version: "1.0.0"}, "1.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isCacheValid(tt.cached, sources, tt.version))
		})
	}
}

func TestDiscoverCached_SourcesWithSameName(t *testing.T) {
	rootA, rootB := t.TempDir(), t.TempDir()
	writeProject(t, filepath.Join(rootA, "providers", "widgets"), "Widgets", "org.acme.widgets")
	writeProject(t, filepath.Join(rootB, "providers", "charts"), "Charts", "org.acme.charts")
	sources := []Source{
		{Name: "providers", BasePath: filepath.Join(rootA, "providers")},
		{Name: "providers", BasePath: filepath.Join(rootB, "providers")},
	}
	cachePath := filepath.Join(t.TempDir(), "providers.json")

	found, err := DiscoverCached(sources, cachePath, "1.0.0", nil)
	require.NoError(t, err)
	require.Len(t, found, 2)

	cached, err := loadCache(cachePath)
	require.NoError(t, err)
	require.Len(t, cached.SourceMods, 2)
	require.True(t, isCacheValid(cached, sources, "1.0.0"))
}
