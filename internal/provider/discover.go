package provider

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sampler-labs/sampler/internal/manifest"
	"go.uber.org/zap"
)

// Source is a directory tree searched for project manifests.
type Source struct {
	Name     string // e.g. "user", "acme-corp"
	BasePath string // absolute path to the source root
}

// manifestPriority orders the accepted manifest names when a directory holds
// more than one.
var manifestPriority = []string{"project.yaml", "project.yml", "project.json"}

// Discover walks every source for project manifests and returns the
// providers they declare, in source order and then path order. Sources that
// cannot be read and manifests that fail validation, or whose requires
// constraint excludes version, are skipped with a warning.
func Discover(sources []Source, version string, log *zap.SugaredLogger) ([]Metadata, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var result []Metadata
	for _, src := range sources {
		paths, err := walkSource(src)
		if err != nil {
			log.Warnw("skipping provider source", "source", src.Name, "path", src.BasePath, "error", err)
			continue
		}
		for _, path := range paths {
			m, ok := loadProject(src, path, version, log)
			if ok {
				result = append(result, m)
			}
		}
	}
	return result, nil
}

// walkSource returns the manifest path of every project directory under the
// source root, sorted.
func walkSource(source Source) ([]string, error) {
	if _, err := os.Stat(source.BasePath); err != nil {
		return nil, err
	}

	byDir := make(map[string]string)
	err := filepath.WalkDir(source.BasePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() || !manifest.IsProjectFile(d.Name()) {
			return nil
		}
		dir := filepath.Dir(path)
		if existing, ok := byDir[dir]; !ok || priority(d.Name()) < priority(filepath.Base(existing)) {
			byDir[dir] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(byDir))
	for _, p := range byDir {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

func priority(name string) int {
	for i, n := range manifestPriority {
		if n == name {
			return i
		}
	}
	return len(manifestPriority)
}

func loadProject(src Source, path, version string, log *zap.SugaredLogger) (Metadata, bool) {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		log.Warnw("skipping unreadable project manifest", "path", path, "error", err)
		return Metadata{}, false
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			log.Warnw("invalid project manifest", "path", path, "issue", issue.String())
		}
		return Metadata{}, false
	}

	pm, err := manifest.ParseProject(path)
	if err != nil {
		log.Warnw("skipping project manifest", "path", path, "error", err)
		return Metadata{}, false
	}

	ok, err := manifest.CheckRequires(pm.Requires, version)
	if err != nil || !ok {
		log.Warnw("project requires a different sampler version",
			"project", pm.Name, "requires", pm.Requires, "version", version)
		return Metadata{}, false
	}

	log.Debugw("found project manifest", "project", pm.Name, "namespace", pm.Namespace, "path", path)
	return Metadata{
		Name:        pm.Name,
		Namespace:   pm.Namespace,
		WelcomePage: pm.WelcomePage,
		Version:     pm.Version,
		Description: pm.Description,
		Source:      src.Name,
	}, true
}
