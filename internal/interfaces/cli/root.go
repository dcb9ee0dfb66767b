// Package cli defines the geoinsight command tree: analyze a file locally,
// run the API server, and manage database migrations.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teraseg/geoinsight/internal/config"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions carries the global flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

// NewRootCommand builds the root command and mounts all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "geoinsight",
		Short:         "Province socio-economic indicator analysis",
		Long:          "geoinsight analyzes per-province indicator tables (education, health, food security) against the national boundary gazetteer.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the configuration file")

	root.AddCommand(
		newAnalyzeCommand(opts),
		newServeCommand(opts),
		newMigrateCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree and reports the exit error, if any.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig reads the configuration file when a path is given, otherwise
// builds the configuration from GEOINSIGHT_* environment variables.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "geoinsight %s (commit %s, built %s)\n",
				Version, GitCommit, BuildDate)
		},
	}
}
