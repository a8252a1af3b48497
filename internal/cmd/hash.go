package cmd

import (
	"fmt"

	"github.com/dendrascience/treeseed/inspect"
	"github.com/spf13/cobra"
)

// NewHashCmd creates and returns the hash subcommand for the treeseed CLI.
func NewHashCmd() *cobra.Command {
	var expect string

	cmd := &cobra.Command{
		Use:   "hash PATH",
		Short: "Fingerprint a directory tree",
		Long: `Print an xxhash64 fingerprint of the tree below PATH.

The fingerprint covers every relative path, entry type and file content, so
two generate runs with the same flags print the same value. With --expect the
command fails when the fingerprint differs.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := inspect.Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			if expect != "" && expect != sum {
				return fmt.Errorf("tree hash mismatch: expected %s, got %s", expect, sum)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&expect, "expect", "", "Fail unless the tree hashes to this value")

	return cmd
}
