package catalog

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// Failure records a candidate whose construction failed.
type Failure struct {
	Candidate string
	Err       error
}

// Report counts what happened to the candidates of one DiscoverSamples call.
type Report struct {
	RunID      string
	StartedAt  time.Time
	Duration   time.Duration
	Candidates int
	Unresolved []string
	Rejected   map[Rejection]int
	Failed     []Failure
	Hidden     int
	Unmatched  []string // visible samples no provider key matched
	Placements int      // (project, sample) pairs added
}

// Summary renders the report as one line.
func (r Report) Summary() string {
	rejected := 0
	for _, n := range r.Rejected {
		rejected += n
	}
	return fmt.Sprintf("%d candidates: %d placed, %d unresolved, %d rejected, %d failed, %d hidden, %d unmatched",
		r.Candidates, r.Placements, len(r.Unresolved), rejected, len(r.Failed), r.Hidden, len(r.Unmatched))
}

func (r Report) clone() Report {
	r.Unresolved = slices.Clone(r.Unresolved)
	r.Rejected = maps.Clone(r.Rejected)
	r.Failed = slices.Clone(r.Failed)
	r.Unmatched = slices.Clone(r.Unmatched)
	return r
}
