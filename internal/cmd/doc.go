// Package cmd provides the command-line interface implementation for treeseed.
//
// This package contains all the subcommand implementations for the treeseed CLI tool.
// It uses the Cobra library for command structure, Viper for binding flags to
// TREESEED_* environment variables and an optional config file, and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, logging and configuration setup
//   - generate: Seeded random directory tree generation
//   - count: File, directory and byte counting
//   - hash: Tree fingerprinting for reproducibility checks
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. ExitCode maps returned errors to sysexits codes.
package cmd
