package cmd

import (
	"github.com/dendrascience/treeseed/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand for the treeseed CLI.
// Unlike --version it also prints the package, commit and build date.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show detailed version information",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "treeseed")
		},
	}
}
