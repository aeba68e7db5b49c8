package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sampler-labs/sampler/internal/branding"
	"github.com/sampler-labs/sampler/internal/config"
	"github.com/sampler-labs/sampler/internal/logger"
	"github.com/spf13/cobra"

	// Bundled projects register their providers and samples on import.
	_ "github.com/sampler-labs/sampler/internal/samples/controlsfx"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var (
	flagLogLevel string
	flagLogFile  string
	flagNoColor  bool

	flushLogger = func() {}
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` discovers registered sample projects and the samples they ship,
and builds a catalog grouping every visible sample under the projects that own it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := flagLogLevel
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		file := flagLogFile
		if file == "" {
			file = config.Get(config.KeyLogFile)
		}
		if flagNoColor {
			color.NoColor = true
		}

		_, cleanup, err := logger.Init(logger.Config{Level: level, FilePath: file, NoColor: color.NoColor})
		if err != nil {
			return err
		}
		flushLogger = cleanup
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
