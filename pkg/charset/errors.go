package charset

import "errors"

// Exported error variables. These represent the terminal failure categories
// an analysis call can surface. Library users can check against these using
// errors.Is; they are always returned wrapped with call-site context.

var (
	// ErrConfigValidation indicates that the provided Options failed
	// validation before the pipeline ran. Returned by Options.Validate and
	// by every entry point that validates options on behalf of the caller.
	ErrConfigValidation = errors.New("invalid configuration")

	// ErrSourceUnavailable indicates that the source could not be opened at
	// all (missing file, permission denied). No bytes were read.
	ErrSourceUnavailable = errors.New("failed to open source")

	// ErrSourceRead indicates an I/O failure while reading the sample after
	// the source was successfully opened. The partial sample is discarded;
	// there is no partial result.
	ErrSourceRead = errors.New("failed to read source")

	// ErrEmptySource indicates that the source yielded zero bytes. This is
	// an explicit condition distinct from a read failure: the read itself
	// succeeded but there is nothing to analyze.
	ErrEmptySource = errors.New("source is empty")
)
