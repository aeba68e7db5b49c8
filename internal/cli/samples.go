package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/sampler-labs/sampler/internal/catalog"
	"github.com/sampler-labs/sampler/internal/registry"
	"github.com/sampler-labs/sampler/internal/sample"
	"github.com/sampler-labs/sampler/internal/ui"
	"github.com/spf13/cobra"
)

var (
	samplesCandidates string
	samplesAll        bool
	samplesJSON       bool
)

func init() {
	samplesCmd.Flags().StringVar(&samplesCandidates, "candidates", "", "Candidates manifest listing the sample types to check")
	samplesCmd.Flags().BoolVar(&samplesAll, "all", false, "Check every registered type instead of a candidate list")
	samplesCmd.Flags().BoolVar(&samplesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(samplesCmd)
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Show how each candidate is classified",
	Long: `Resolve every candidate and report whether it would enter the catalog.
Projects are not consulted; use "catalog" to see where samples are placed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates, err := loadCandidates(samplesCandidates, samplesAll)
		if err != nil {
			return err
		}

		rows := make([]candidateStatus, 0, len(candidates))
		for _, c := range candidates {
			rows = append(rows, classify(c))
		}

		if samplesJSON {
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling samples: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		t := ui.NewTable(cmd.OutOrStdout(), color.NoColor, "CANDIDATE", "STATUS", "NAME")
		for _, r := range rows {
			t.AddRow(r.Candidate, r.Status, orDash(r.Name))
		}
		t.Render()
		return nil
	},
}

type candidateStatus struct {
	Candidate string `json:"candidate"`
	Status    string `json:"status"`
	Name      string `json:"name,omitempty"`
	Error     string `json:"error,omitempty"`
}

// classify runs a candidate through the same checks the catalog builder
// applies, without placing it anywhere.
func classify(candidate string) candidateStatus {
	st := candidateStatus{Candidate: candidate}

	rt, ok := registry.Resolve(candidate)
	if !ok {
		st.Status = "unresolved"
		return st
	}
	if why := catalog.Eligibility(rt.Type); why != catalog.Eligible {
		st.Status = why.String()
		return st
	}

	s, err := registry.Instantiate(rt)
	if err != nil {
		st.Status = "failed"
		st.Error = err.Error()
		return st
	}
	st.Name = sampleName(s)
	if !s.Visible() {
		st.Status = "hidden"
		return st
	}
	st.Status = "ok"
	return st
}

func sampleName(s sample.Sample) string {
	if s == nil {
		return ""
	}
	return s.Name()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
