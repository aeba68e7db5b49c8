package cli

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/sampler-labs/sampler/internal/config"
	"github.com/sampler-labs/sampler/internal/logger"
	"github.com/sampler-labs/sampler/internal/manifest"
	"github.com/sampler-labs/sampler/internal/provider"
	"github.com/sampler-labs/sampler/internal/registry"
	"github.com/sampler-labs/sampler/internal/samples/controlsfx"
)

var (
	indexOnce sync.Once
	index     *provider.Index
	indexErr  error
)

// loadIndex builds the provider index once per process.
func loadIndex(extraDirs []string) (*provider.Index, error) {
	indexOnce.Do(func() {
		index, indexErr = buildIndex(extraDirs)
	})
	return index, indexErr
}

// buildIndex combines compiled-in providers with the ones declared by
// project manifests under the configured and requested directories.
func buildIndex(extraDirs []string) (*provider.Index, error) {
	log := logger.Logger()
	log.Info("Discovering projects...")

	providers := provider.Registered()

	if sources := providerSources(extraDirs); len(sources) > 0 {
		var (
			found []provider.Metadata
			err   error
		)
		if config.GetBool(config.KeyCache) {
			found, err = provider.DiscoverCached(sources, config.CachePath(), buildVersion, log)
		} else {
			found, err = provider.Discover(sources, buildVersion, log)
		}
		if err != nil {
			return nil, fmt.Errorf("discovering project manifests: %w", err)
		}
		providers = append(providers, found...)
	}

	for _, p := range providers {
		log.Infow("Found project", "project", p.Name, "namespace", p.Namespace, "source", p.Source)
	}

	idx := provider.BuildIndex(providers)
	if idx.Len() == 0 {
		log.Warn("Did not find any projects")
	}
	return idx, nil
}

// providerSources turns configured and requested directories into sources.
// Configured directories come first so that directories given on the
// command line override them.
func providerSources(extraDirs []string) []provider.Source {
	var sources []provider.Source
	seen := make(map[string]bool)
	names := make(map[string]bool)
	for _, dir := range append(config.GetStringSlice(config.KeyProviderDirs), extraDirs...) {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = dir
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		sources = append(sources, provider.Source{Name: sourceName(abs, names), BasePath: abs})
	}
	return sources
}

// sourceName returns the base name of dir, prefixed with parent directories
// until it differs from every name already taken.
func sourceName(dir string, taken map[string]bool) string {
	name, parent := filepath.Base(dir), filepath.Dir(dir)
	for taken[name] {
		next := filepath.Dir(parent)
		if next == parent {
			name = dir
			break
		}
		name = filepath.Base(parent) + "/" + name
		parent = next
	}
	taken[name] = true
	return name
}

// loadCandidates returns the sample type names to scan: every registered type
// with all, the list in a candidates manifest, or the bundled list.
func loadCandidates(file string, all bool) ([]string, error) {
	if all {
		return registry.Default.Names(), nil
	}
	if file == "" {
		file = config.Get(config.KeyCandidatesFile)
	}
	if file == "" {
		return controlsfx.Candidates(), nil
	}

	result, err := manifest.ValidateFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading candidates manifest: %w", err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("candidates manifest %s is invalid: %s", file, result.Issues[0])
	}
	parsed, err := manifest.ParseFile(file)
	if err != nil {
		return nil, err
	}
	switch m := parsed.(type) {
	case *manifest.CandidatesManifest:
		return m.Candidates, nil
	case *manifest.ProjectManifest:
		return nil, fmt.Errorf("%s is a %s manifest, not a candidates manifest", file, m.Type)
	default:
		return nil, fmt.Errorf("%s is not a candidates manifest", file)
	}
}
