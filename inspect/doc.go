// Package inspect reads back generated trees.
//
// Count reports how many files, directories and bytes a tree holds and how
// deep it goes. Hash reduces a tree to a single xxhash64 fingerprint so two
// runs can be compared for reproducibility.
package inspect
