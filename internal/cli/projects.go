package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/sampler-labs/sampler/internal/ui"
	"github.com/spf13/cobra"
)

var (
	projectsDirs []string
	projectsJSON bool
)

func init() {
	projectsCmd.Flags().StringArrayVar(&projectsDirs, "provider-dir", nil, "Directory to scan for project manifests (repeatable)")
	projectsCmd.Flags().BoolVar(&projectsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(projectsCmd)
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List registered sample projects",
	Long: `List every project in the provider index, keyed by namespace.

Projects come from providers compiled into the binary and from project
manifests found under the configured provider directories. When two providers
declare the same namespace the one discovered last wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex(projectsDirs)
		if err != nil {
			return err
		}
		providers := idx.Providers()

		if projectsJSON {
			out, err := json.MarshalIndent(providers, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling projects: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		if len(providers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
			return nil
		}
		ui.RenderProviders(cmd.OutOrStdout(), providers, color.NoColor)
		return nil
	},
}
