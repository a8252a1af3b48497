package cmd

import (
	"fmt"

	"github.com/dendrascience/treeseed/inspect"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the treeseed CLI.
// It reports what a directory tree holds.
func NewCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count PATH",
		Short: "Count files, directories and bytes in a directory tree",
		Long: `Count the files, directories and bytes below PATH.

This is a utility command that recursively walks through a directory,
useful for checking a generated tree against the requested totals.
PATH itself is not counted.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := inspect.Count(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total files: %s\n", humanize.Comma(int64(s.Files)))
			fmt.Fprintf(out, "Total directories: %s\n", humanize.Comma(int64(s.Dirs)))
			fmt.Fprintf(out, "Total bytes: %s (%s)\n", humanize.Comma(int64(s.Bytes)), humanize.IBytes(s.Bytes))
			fmt.Fprintf(out, "Max depth: %d\n", s.MaxDepth)
			return nil
		},
	}
	return cmd
}
