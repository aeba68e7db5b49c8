package cli

import (
	"fmt"

	"github.com/sampler-labs/sampler/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>...",
	Short: "Validate project and candidates manifests",
	Long: `Check each manifest against the manifest schema. Project manifests need a
name and a namespace; candidates manifests need a non-empty candidate list.
Versions and requires constraints must be valid semver.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, path := range args {
			ok, err := runManifestCheck(cmd, path)
			if err != nil {
				return err
			}
			if !ok {
				invalid++
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d manifests invalid", invalid, len(args))
		}
		return nil
	},
}

func runManifestCheck(cmd *cobra.Command, path string) (bool, error) {
	out := cmd.OutOrStdout()

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return false, fmt.Errorf("validating %s: %w", path, err)
	}
	if result.Valid {
		m, err := manifest.Parse(path)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(out, "  [ OK ] %s (%s %s %s)\n", path, m.Type, m.Name, m.Version)
		return true, nil
	}

	fmt.Fprintf(out, "  [FAIL] %s\n", path)
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "         %s\n", issue)
	}
	return false, nil
}
