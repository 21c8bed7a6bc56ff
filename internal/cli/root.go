package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "recsort",
		Short:        "Sort name,count records between text files",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .recsort/logs/recsort.log")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to recsort.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(
		sortCmd(g),
		checkCmd(g),
		modesCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
