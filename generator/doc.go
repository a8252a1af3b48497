// Package generator builds seeded pseudo-random directory trees.
//
// A run is described by Options, which Resolve turns into a Configuration:
// the mean number of files and subdirectories per directory and the mean
// file size needed to hit the requested totals within the depth bound.
//
// Every directory owns a ChaCha8 stream seeded by its parent. Draws are
// taken from it in a fixed order:
//  1. subdirectory and file counts, then file sizes
//  2. one seed per child
//  3. file contents
//
// Nothing else feeds the streams, so the same Options always produce the
// same tree no matter how the work is scheduled.
//
// Counts are sampled around their means:
//   - means up to 10,000 use a normal distribution with a spread of 20%
//   - larger means use a log-normal distribution with a coefficient of variation of 2
//
// In exact modes a directory still samples its fan-out, but the file count
// or byte total it was handed is split between itself and its children in
// proportion to their expected share, so the tree sums to the target.
//
// Directories are populated by a fixed pool of Workers goroutines that take
// them from a shared depth-first frontier. The first failure cancels the
// rest, and the workers finish the directory they hold before Generate
// returns. Errors are returned as *ConfigError, *IOError or
// *TaskError; use Classify to tell them apart.
package generator
