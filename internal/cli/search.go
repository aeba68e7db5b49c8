package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sampler-labs/sampler/internal/catalog"
	"github.com/sampler-labs/sampler/internal/ui"
	"github.com/spf13/cobra"
)

var (
	searchProjectFilter string
	searchGroupFilter   string
	searchDirs          []string
	searchCandidates    string
	searchAll           bool
	searchJSON          bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the sample catalog",
	Long: `Search the samples in the catalog across all projects.

The query matches against sample names, descriptions and namespaces
(case-insensitive substring). Use --project and --group to narrow the results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchProjectFilter, "project", "", "Filter by project name")
	searchCmd.Flags().StringVar(&searchGroupFilter, "group", "", "Filter by namespace group (e.g. button, textfields)")
	searchCmd.Flags().StringArrayVar(&searchDirs, "provider-dir", nil, "Directory to scan for project manifests (repeatable)")
	searchCmd.Flags().StringVar(&searchCandidates, "candidates", "", "Candidates manifest listing the sample types to scan")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "Scan every registered type instead of a candidate list")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

// searchEntry is one sample placement in the catalog.
type searchEntry struct {
	Project     string `json:"project"`
	Namespace   string `json:"namespace"`
	Group       string `json:"group"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	cat, _, err := buildCatalog(searchDirs, searchCandidates, searchAll)
	if err != nil {
		return err
	}

	var entries []searchEntry
	for _, e := range catalogEntries(cat) {
		if matchesSearch(e, query, searchProjectFilter, searchGroupFilter) {
			entries = append(entries, e)
		}
	}

	if len(entries) == 0 {
		msg := "No samples found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		if searchProjectFilter != "" {
			msg += fmt.Sprintf(" with --project=%s", searchProjectFilter)
		}
		if searchGroupFilter != "" {
			msg += fmt.Sprintf(" with --group=%s", searchGroupFilter)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if searchJSON {
		return printSearchJSON(cmd, entries)
	}
	return printSearchTable(cmd, entries)
}

// catalogEntries flattens the catalog in project, group, insertion order.
func catalogEntries(cat catalog.Catalog) []searchEntry {
	var entries []searchEntry
	for _, name := range cat.Names() {
		p := cat[name]
		for _, ns := range p.Namespaces() {
			for _, s := range p.Samples(ns) {
				entries = append(entries, searchEntry{
					Project:     p.Name,
					Namespace:   ns,
					Group:       groupOf(ns, p.Namespace),
					Name:        s.Name(),
					Description: s.Description(),
				})
			}
		}
	}
	return entries
}

// groupOf returns ns relative to the project key, or "." for the key itself.
func groupOf(ns, key string) string {
	switch {
	case ns == key:
		return "."
	case strings.HasPrefix(ns, key+"."):
		return strings.TrimPrefix(ns, key+".")
	default:
		return ns
	}
}

// matchesSearch returns true if the entry matches all provided filters.
// All filters are AND-combined: the entry must match every non-empty filter.
func matchesSearch(e searchEntry, query, projectFilter, groupFilter string) bool {
	if projectFilter != "" && !strings.EqualFold(e.Project, projectFilter) {
		return false
	}

	if groupFilter != "" && !strings.EqualFold(e.Group, groupFilter) {
		return false
	}

	// Substring match on name, description, or namespace.
	if query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.Namespace), q) {
			return false
		}
	}

	return true
}

func printSearchTable(cmd *cobra.Command, entries []searchEntry) error {
	t := ui.NewTable(cmd.OutOrStdout(), color.NoColor, "PROJECT", "GROUP", "NAME", "DESCRIPTION")
	for _, e := range entries {
		desc := e.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		t.AddRow(e.Project, e.Group, e.Name, orDash(desc))
	}
	t.Render()
	return nil
}

func printSearchJSON(cmd *cobra.Command, entries []searchEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
