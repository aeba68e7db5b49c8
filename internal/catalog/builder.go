package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sampler-labs/sampler/internal/provider"
	"github.com/sampler-labs/sampler/internal/registry"
	"github.com/sampler-labs/sampler/internal/sample"
	"go.uber.org/zap"
)

// ResolveFunc binds a candidate name to a type. It returns false when the
// candidate is not available in this build.
type ResolveFunc func(candidate string) (registry.ResolvedType, bool)

// InstantiateFunc constructs a sample from a resolved type.
type InstantiateFunc func(rt registry.ResolvedType) (sample.Sample, error)

// Builder accumulates a catalog. Projects created by one DiscoverSamples
// call are kept and extended by later calls until Reset.
type Builder struct {
	mu       sync.Mutex
	projects map[string]*Project
	last     Report
	log      *zap.SugaredLogger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for per-candidate diagnostics.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBuilder returns a builder with an empty catalog.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		projects: make(map[string]*Project),
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DiscoverSamples resolves, filters and constructs each candidate and files
// every visible sample into the projects whose namespace key is a substring
// of the sample's namespace. A sample can land in several projects. None of
// the per-candidate failures stop the run: unresolvable, ineligible, broken
// and hidden candidates are left out of the catalog and counted in the run
// report.
//
// The returned catalog is a snapshot of the builder's accumulated state; the
// caller owns it.
func (b *Builder) DiscoverSamples(candidates []string, index *provider.Index, resolve ResolveFunc, instantiate InstantiateFunc) Catalog {
	b.mu.Lock()
	defer b.mu.Unlock()

	report := Report{
		RunID:      uuid.NewString(),
		StartedAt:  time.Now(),
		Candidates: len(candidates),
		Rejected:   make(map[Rejection]int),
	}
	log := b.log.With("run", report.RunID)
	keys := index.Keys()

	for _, candidate := range candidates {
		rt, ok := resolve(candidate)
		if !ok {
			report.Unresolved = append(report.Unresolved, candidate)
			log.Debugw("candidate not found", "candidate", candidate)
			continue
		}

		if why := Eligibility(rt.Type); why != Eligible {
			report.Rejected[why]++
			log.Debugw("candidate not eligible", "candidate", candidate, "reason", why.String())
			continue
		}

		s, err := instantiate(rt)
		if err != nil || s == nil {
			report.Failed = append(report.Failed, Failure{Candidate: candidate, Err: err})
			log.Warnw("could not create sample", "candidate", candidate, "error", err)
			continue
		}

		if !s.Visible() {
			report.Hidden++
			log.Debugw("sample hidden", "candidate", candidate)
			continue
		}

		namespace := rt.Namespace()
		matched := false
		for _, key := range keys {
			if !strings.Contains(namespace, key) {
				continue
			}
			meta, _ := index.Lookup(key)

			project, ok := b.projects[meta.Name]
			if !ok {
				project = NewProject(meta)
				b.projects[meta.Name] = project
				log.Debugw("created project", "project", meta.Name, "namespace", key)
			}
			project.AddSample(namespace, s)
			report.Placements++
			matched = true
		}
		if !matched {
			report.Unmatched = append(report.Unmatched, candidate)
			log.Debugw("no project claims sample", "candidate", candidate, "namespace", namespace)
		}
	}

	report.Duration = time.Since(report.StartedAt)
	b.last = report
	log.Infow("catalog built", "projects", len(b.projects), "summary", report.Summary())

	return b.snapshot()
}

// Catalog returns a snapshot of the accumulated catalog.
func (b *Builder) Catalog() Catalog {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

// LastRun returns a copy of the report of the most recent DiscoverSamples
// call.
func (b *Builder) LastRun() Report {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last.clone()
}

// Reset discards the accumulated catalog.
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.projects = make(map[string]*Project)
	b.last = Report{}
}

func (b *Builder) snapshot() Catalog {
	out := make(Catalog, len(b.projects))
	for name, p := range b.projects {
		out[name] = p.clone()
	}
	return out
}
