package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/sampler-labs/sampler/internal/catalog"
	"github.com/sampler-labs/sampler/internal/logger"
	"github.com/sampler-labs/sampler/internal/registry"
	"github.com/sampler-labs/sampler/internal/ui"
	"github.com/spf13/cobra"
)

var (
	catalogDirs       []string
	catalogCandidates string
	catalogAll        bool
	catalogJSON       bool
)

func init() {
	catalogCmd.Flags().StringArrayVar(&catalogDirs, "provider-dir", nil, "Directory to scan for project manifests (repeatable)")
	catalogCmd.Flags().StringVar(&catalogCandidates, "candidates", "", "Candidates manifest listing the sample types to scan")
	catalogCmd.Flags().BoolVar(&catalogAll, "all", false, "Scan every registered type instead of a candidate list")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build the sample catalog",
	Long: `Discover projects, scan the candidate sample types and print every visible
sample grouped by project and namespace.

Candidates that cannot be resolved, abstract types, placeholders and samples
that fail to construct are skipped and counted in the run summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, report, err := buildCatalog(catalogDirs, catalogCandidates, catalogAll)
		if err != nil {
			return err
		}

		if catalogJSON {
			out, err := json.MarshalIndent(catalogView(cat, report), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling catalog: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		ui.RenderCatalog(cmd.OutOrStdout(), cat, color.NoColor)
		fmt.Fprintln(cmd.OutOrStdout())
		ui.RenderReport(cmd.OutOrStdout(), report, color.NoColor)
		return nil
	},
}

// buildCatalog runs one discovery pass over the default registry.
func buildCatalog(dirs []string, candidatesFile string, all bool) (catalog.Catalog, catalog.Report, error) {
	idx, err := loadIndex(dirs)
	if err != nil {
		return nil, catalog.Report{}, err
	}
	candidates, err := loadCandidates(candidatesFile, all)
	if err != nil {
		return nil, catalog.Report{}, err
	}

	b := catalog.NewBuilder(catalog.WithLogger(logger.Logger()))
	cat := b.DiscoverSamples(candidates, idx, registry.Resolve, registry.Instantiate)
	return cat, b.LastRun(), nil
}

type sampleJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type groupJSON struct {
	Namespace string       `json:"namespace"`
	Samples   []sampleJSON `json:"samples"`
}

type projectJSON struct {
	Name        string      `json:"name"`
	Namespace   string      `json:"namespace"`
	WelcomePage string      `json:"welcome_page,omitempty"`
	Groups      []groupJSON `json:"groups"`
}

type failureJSON struct {
	Candidate string `json:"candidate"`
	Error     string `json:"error"`
}

type reportJSON struct {
	RunID      string         `json:"run_id"`
	Candidates int            `json:"candidates"`
	Placements int            `json:"placements"`
	Unresolved []string       `json:"unresolved,omitempty"`
	Rejected   map[string]int `json:"rejected,omitempty"`
	Failed     []failureJSON  `json:"failed,omitempty"`
	Hidden     int            `json:"hidden"`
	Unmatched  []string       `json:"unmatched,omitempty"`
}

type catalogDoc struct {
	Projects []projectJSON `json:"projects"`
	Report   reportJSON    `json:"report"`
}

func catalogView(cat catalog.Catalog, r catalog.Report) catalogDoc {
	view := catalogDoc{Projects: []projectJSON{}}
	for _, name := range cat.Names() {
		p := cat[name]
		pj := projectJSON{Name: p.Name, Namespace: p.Namespace, WelcomePage: p.WelcomePage}
		for _, ns := range p.Namespaces() {
			g := groupJSON{Namespace: ns}
			for _, s := range p.Samples(ns) {
				g.Samples = append(g.Samples, sampleJSON{Name: s.Name(), Description: s.Description()})
			}
			pj.Groups = append(pj.Groups, g)
		}
		view.Projects = append(view.Projects, pj)
	}

	view.Report = reportJSON{
		RunID:      r.RunID,
		Candidates: r.Candidates,
		Placements: r.Placements,
		Unresolved: r.Unresolved,
		Hidden:     r.Hidden,
		Unmatched:  r.Unmatched,
	}
	if len(r.Rejected) > 0 {
		view.Report.Rejected = make(map[string]int, len(r.Rejected))
		for why, n := range r.Rejected {
			view.Report.Rejected[why.String()] = n
		}
	}
	for _, f := range r.Failed {
		msg := "constructor returned no sample"
		if f.Err != nil {
			msg = f.Err.Error()
		}
		view.Report.Failed = append(view.Report.Failed, failureJSON{Candidate: f.Candidate, Error: msg})
	}
	return view
}
