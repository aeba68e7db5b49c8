package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sampler-labs/sampler/internal/branding"
	"github.com/sampler-labs/sampler/internal/config"
	"github.com/sampler-labs/sampler/internal/provider"
	"github.com/sampler-labs/sampler/internal/registry"
	"github.com/spf13/cobra"
)

var (
	checkConfig     bool
	checkProviders  bool
	checkCandidates bool
	doctorDirs      []string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Verify the config file and home directory")
	doctorCmd.Flags().BoolVar(&checkProviders, "check-providers", false, "Verify provider directories and the project index")
	doctorCmd.Flags().BoolVar(&checkCandidates, "check-candidates", false, "Verify that candidates resolve and construct")
	doctorCmd.Flags().StringArrayVar(&doctorDirs, "provider-dir", nil, "Directory to scan for project manifests (repeatable)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the sampler setup",
	Long:  `Run diagnostic checks on the configuration, provider sources and candidates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// If no specific flag, run all checks.
		all := !checkConfig && !checkProviders && !checkCandidates

		if all || checkConfig {
			runConfigCheck(out)
		}
		if all || checkProviders {
			if err := runProvidersCheck(out, doctorDirs); err != nil {
				return err
			}
		}
		if all || checkCandidates {
			if err := runCandidatesCheck(out); err != nil {
				return err
			}
		}
		return nil
	},
}

func runConfigCheck(out io.Writer) {
	fmt.Fprintln(out, "Config check:")

	if info, err := os.Stat(config.Dir()); err != nil || !info.IsDir() {
		fmt.Fprintf(out, "  [WARN] %s does not exist (run `config set` to create it)\n", config.Dir())
	} else {
		fmt.Fprintf(out, "  [ OK ] %s exists\n", config.Dir())
	}

	if _, err := os.Stat(config.FilePath()); err != nil {
		fmt.Fprintf(out, "  [INFO] No config file, using defaults\n")
	} else {
		fmt.Fprintf(out, "  [ OK ] %s\n", config.FilePath())
	}
	fmt.Fprintf(out, "  [INFO] log_level = %s\n", config.Get(config.KeyLogLevel))

	for _, key := range config.Keys() {
		if env := branding.EnvVar(key); os.Getenv(env) != "" {
			fmt.Fprintf(out, "  [INFO] %s overridden by $%s\n", key, env)
		}
	}
}

func runProvidersCheck(out io.Writer, dirs []string) error {
	fmt.Fprintln(out, "Providers check:")

	for _, src := range providerSources(dirs) {
		info, err := os.Stat(src.BasePath)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(out, "  [MISS] %s not found\n", src.BasePath)
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s\n", src.BasePath)
	}

	idx, err := buildIndex(dirs)
	if err != nil {
		return err
	}
	if idx.Len() == 0 {
		fmt.Fprintln(out, "  [WARN] No projects registered; every catalog will be empty")
		return nil
	}
	fmt.Fprintf(out, "  [ OK ] %d projects indexed\n", idx.Len())
	for _, m := range shadowed(provider.Registered(), idx) {
		fmt.Fprintf(out, "  [INFO] %s (%s) is overridden by a later provider\n", m.Name, m.Namespace)
	}
	return nil
}

// shadowed returns registered providers whose namespace now maps to a
// different provider in idx.
func shadowed(registered []provider.Metadata, idx *provider.Index) []provider.Metadata {
	var out []provider.Metadata
	for _, m := range registered {
		if got, ok := idx.Lookup(m.Namespace); ok && got != m {
			out = append(out, m)
		}
	}
	return out
}

func runCandidatesCheck(out io.Writer) error {
	fmt.Fprintln(out, "Candidates check:")

	candidates, err := loadCandidates("", false)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return nil
	}

	counts := make(map[string]int)
	for _, c := range candidates {
		st := classify(c)
		counts[st.Status]++
		if st.Status == "failed" {
			fmt.Fprintf(out, "  [FAIL] %s: %s\n", c, st.Error)
		}
	}
	fmt.Fprintf(out, "  [ OK ] %d of %d candidates usable\n", counts["ok"], len(candidates))
	if n := counts["unresolved"]; n > 0 {
		fmt.Fprintf(out, "  [INFO] %d candidates not in this build (registered types: %d)\n", n, registry.Default.Len())
	}
	return nil
}
