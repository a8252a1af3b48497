package generator

import (
	"fmt"
	"math"
	"runtime"
)

// DefaultMaxDepth is the tree depth used when no depth is requested.
const DefaultMaxDepth = 5

// Options are the user-facing generation targets.
type Options struct {
	// Root is the directory to populate. It is created if missing and must be empty.
	Root string
	// Files is the target number of files. It must be positive.
	Files uint64
	// Bytes is the target volume of file content. Zero creates empty files.
	Bytes uint64
	// FilesExact and BytesExact make the matching target a precise total
	// instead of a statistical mean.
	FilesExact bool
	BytesExact bool
	// MaxDepth bounds directory nesting. Zero puts every file in Root.
	MaxDepth uint32
	// Ratio is the expected number of files per directory.
	// Zero selects max(Files/1000, 1).
	Ratio uint64
	// Seed adds entropy to the generator's starting state.
	Seed uint64
	// Workers bounds how many directories are populated at once.
	// Zero or less uses runtime.NumCPU().
	Workers int
	// IOLimit caps content writes in bytes per second. Zero is unlimited.
	IOLimit int64
}

// DefaultOptions returns Options with the default depth and worker count.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Workers:  runtime.NumCPU(),
	}
}

// Configuration holds the per-directory parameters derived from Options.
// It is computed once and never modified afterwards.
type Configuration struct {
	Root       string
	Files      uint64
	Bytes      uint64
	FilesExact bool
	BytesExact bool
	MaxDepth   uint32
	Seed       uint64
	Workers    int
	IOLimit    int64

	FilesPerDir  float64
	DirsPerDir   float64
	BytesPerFile float64

	// ExpectedDirs and ExpectedDirsPerDir are rounded figures for reporting.
	ExpectedDirs       uint64
	ExpectedDirsPerDir uint64
}

// Resolve validates o and derives the per-directory parameters.
// It performs no filesystem access.
func (o Options) Resolve() (*Configuration, error) {
	if o.Root == "" {
		return nil, &ConfigError{cause: ErrNoRoot}
	}
	if o.Files == 0 {
		return nil, &ConfigError{Path: o.Root, cause: ErrNoFiles}
	}

	ratio := o.Ratio
	if ratio == 0 {
		ratio = max(o.Files/1000, 1)
	}
	if ratio > o.Files {
		return nil, &ConfigError{
			Path:  o.Root,
			cause: fmt.Errorf("%w (ratio %d, files %d)", ErrRatioTooLarge, ratio, o.Files),
		}
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cfg := &Configuration{
		Root:       o.Root,
		Files:      o.Files,
		Bytes:      o.Bytes,
		FilesExact: o.FilesExact,
		BytesExact: o.BytesExact && o.Bytes > 0,
		MaxDepth:   o.MaxDepth,
		Seed:       o.Seed,
		Workers:    workers,
		IOLimit:    max(o.IOLimit, 0),
	}
	if o.Bytes > 0 {
		cfg.BytesPerFile = float64(o.Bytes) / float64(o.Files)
	}

	if o.MaxDepth == 0 {
		cfg.FilesPerDir = float64(o.Files)
		cfg.ExpectedDirs = 1
		return cfg, nil
	}

	// numDirs = dirsPerDir^maxDepth
	numDirs := float64(o.Files) / float64(ratio)
	cfg.DirsPerDir = math.Pow(numDirs, 1/float64(o.MaxDepth))
	cfg.FilesPerDir = float64(ratio)
	cfg.ExpectedDirs = uint64(math.Round(numDirs))
	cfg.ExpectedDirsPerDir = uint64(math.Round(cfg.DirsPerDir))
	return cfg, nil
}

// Mode reports which totals the configuration must meet exactly.
func (c *Configuration) Mode() Mode {
	switch {
	case c.FilesExact && c.BytesExact:
		return ModeExact
	case c.FilesExact:
		return ModeExactFiles
	case c.BytesExact:
		return ModeExactBytes
	default:
		return ModeApproximate
	}
}

// expectedSubtreeFiles is the mean number of files in a subtree whose root
// has depth levels of directories below it.
func (c *Configuration) expectedSubtreeFiles(depth uint32) float64 {
	levels, width := 0.0, 1.0
	for i := uint32(0); i <= depth; i++ {
		levels += width
		width *= c.DirsPerDir
		if levels > maxWeight {
			break
		}
	}
	return math.Min(c.FilesPerDir*levels, maxWeight)
}
