package provider

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sampler-labs/sampler/internal/manifest"
	"go.uber.org/zap"
)

// CachedProviders is the on-disk form of a discovery result together with
// the source modification times used to invalidate it.
type CachedProviders struct {
	Providers  []Metadata       `json:"providers"`
	SourceMods map[string]int64 `json:"source_mods"` // source base path -> latest mtime (unix nanos)
	Version    string           `json:"version"`
	CachedAt   time.Time        `json:"cached_at"`
}

// DiscoverCached returns the providers declared under sources, reusing the
// cache file at cachePath while it is still valid. A stale or missing cache
// triggers a fresh Discover and a rewrite of the cache.
func DiscoverCached(sources []Source, cachePath, version string, log *zap.SugaredLogger) ([]Metadata, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	cached, err := loadCache(cachePath)
	if err == nil && isCacheValid(cached, sources, version) {
		log.Debugw("using cached provider discovery", "path", cachePath, "providers", len(cached.Providers))
		return cached.Providers, nil
	}

	providers, err := Discover(sources, version, log)
	if err != nil {
		return nil, err
	}

	if err := writeCache(cachePath, providers, sources, version); err != nil {
		log.Debugw("could not write provider cache", "path", cachePath, "error", err)
	}
	return providers, nil
}

func loadCache(path string) (*CachedProviders, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c CachedProviders
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// isCacheValid checks that the cache was written by the same version for the
// same sources and that no source changed since.
func isCacheValid(cached *CachedProviders, sources []Source, version string) bool {
	if cached == nil || cached.Version != version {
		return false
	}
	if len(cached.SourceMods) != len(sources) {
		return false
	}
	for _, src := range sources {
		mtime, ok := cached.SourceMods[src.BasePath]
		if !ok || mtime != latestMtime(src.BasePath) {
			return false
		}
	}
	return true
}

// latestMtime returns the newest modification time among the source's
// directories and project manifests. Directory mtimes catch added and
// removed projects; manifest mtimes catch edits.
func latestMtime(basePath string) int64 {
	var latest int64
	_ = filepath.WalkDir(basePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && !manifest.IsProjectFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if t := info.ModTime().UnixNano(); t > latest {
			latest = t
		}
		return nil
	})
	return latest
}

func writeCache(path string, providers []Metadata, sources []Source, version string) error {
	mods := make(map[string]int64, len(sources))
	for _, src := range sources {
		mods[src.BasePath] = latestMtime(src.BasePath)
	}

	data, err := json.MarshalIndent(CachedProviders{
		Providers:  providers,
		SourceMods: mods,
		Version:    version,
		CachedAt:   time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
