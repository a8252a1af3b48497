package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for package generator.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Option errors
	ErrNoRoot        = errors.New("root directory must be specified")
	ErrNoFiles       = errors.New("at least one file must be generated")
	ErrRatioTooLarge = errors.New("file to dir ratio cannot be larger than the number of files to generate")

	// Root directory errors
	ErrRootNotEmpty = errors.New("root directory must be empty")
)

// ErrorKind is the broad class of a generation failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindConfig failures are detected before anything is written.
	KindConfig
	// KindIO failures come from creating directories or writing files.
	KindIO
	// KindTask failures mean a spawned unit of work could not deliver its result.
	KindTask
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	case KindTask:
		return "task"
	default:
		return "unknown"
	}
}

// ConfigError indicates invalid options or an unusable root directory.
//
// The original underlying error can be accessed via errors.Unwrap.
type ConfigError struct {
	Path  string
	cause error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid configuration for %s: %v", e.Path, e.cause)
	}
	return fmt.Sprintf("invalid configuration: %v", e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }

// IOError indicates a failed filesystem operation on Path.
//
// The original underlying error can be accessed via errors.Unwrap.
type IOError struct {
	Op    string
	Path  string
	cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.cause)
}

func (e *IOError) Unwrap() error { return e.cause }

// TaskError indicates that the work generating the subtree at Path
// could not deliver its result.
type TaskError struct {
	Path  string
	cause error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("failed to retrieve task result for %s: %v", e.Path, e.cause)
}

func (e *TaskError) Unwrap() error { return e.cause }

// Classify reports which class of failure err belongs to.
func Classify(err error) ErrorKind {
	var (
		ce *ConfigError
		ie *IOError
		te *TaskError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &te):
		return KindTask
	case errors.As(err, &ce):
		return KindConfig
	case errors.As(err, &ie):
		return KindIO
	default:
		return KindUnknown
	}
}
