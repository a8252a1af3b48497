package cmd

import (
	"context"
	"errors"

	"github.com/dendrascience/treeseed/generator"
	"github.com/spf13/cobra"
)

// Exit codes follow sysexits.h.
const (
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

// usageError marks a bad command line.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ue := (usageError{}); errors.As(err, &ue) {
		return ExitUsage
	}
	if errors.Is(err, context.Canceled) {
		return 1
	}
	switch generator.Classify(err) {
	case generator.KindConfig:
		return ExitDataErr
	case generator.KindIO:
		return ExitIOErr
	case generator.KindTask:
		return ExitSoftware
	default:
		return 1
	}
}

func flagError(_ *cobra.Command, err error) error {
	return usageError{err: err}
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}
