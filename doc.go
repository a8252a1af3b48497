// Package main provides the treeseed command-line interface.
//
// treeseed generates seeded pseudo-random directory hierarchies for benchmarking
// and testing filesystem tools. The same inputs always produce the same tree,
// and file counts and total size can be met approximately or exactly.
//
// The main binary supports multiple subcommands:
//   - generate: Populate an empty directory with a random tree
//   - count: Count files, directories and bytes in a tree
//   - hash: Fingerprint a tree to compare runs
package main
