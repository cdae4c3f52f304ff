// Package charset implements a heuristic text-encoding and line-ending
// detector: given a raw byte sample it determines which character encoding
// most plausibly produced those bytes and which line-ending convention the
// sample uses.
//
// The pipeline combines deterministic BOM signature checks, a UTF-16
// null-parity heuristic, a statistical base guess remapped by raw
// byte-distribution analysis, trial decoding against an ordered candidate
// list, Unicode-range language inference over each trial's decoded text, and
// a tunable scoring function with a deterministic tie-break. Detection is
// heuristic, not perfect; the contract is deterministic, reproducible
// behavior for a given sample and configuration.
//
// The statistical guesser and the codec are narrow capability interfaces
// (see the guesser and codec subpackages) so the pipeline does not depend on
// any particular model or codec table and both can be replaced with fakes in
// tests.
package charset

import (
	"fmt"
	"io"
	"os"
)

// AnalyzeFile reads the entire file at path into memory and analyzes it. The
// returned Match carries the full raw content and the winning trial's
// decoded text. For large sources prefer AnalyzeFileSample, which bounds how
// much is read.
func AnalyzeFile(path string, opts Options) (*Match, error) {
	return analyzePath(path, 0, opts.withDefaults())
}

// AnalyzeFileSample reads at most opts.MaxSampleSize bytes from the file at
// path, in opts.ChunkSize chunks, and analyzes the sample. The result shape
// is identical to AnalyzeFile, but Match.RawBytes holds the sample only.
func AnalyzeFileSample(path string, opts Options) (*Match, error) {
	o := opts.withDefaults()
	return analyzePath(path, o.MaxSampleSize, o)
}

// AnalyzeReader applies the bounded-sample semantics of AnalyzeFileSample to
// an arbitrary reader. The reader is not closed; lifecycle stays with the
// caller.
func AnalyzeReader(r io.Reader, opts Options) (*Match, error) {
	o := opts.withDefaults()
	sample, err := readSample(r, o.ChunkSize, o.MaxSampleSize)
	if err != nil {
		return nil, err
	}
	return analyze(sample, o)
}

// analyzePath opens, samples and analyzes one file. The handle is released
// on every path, including read failures. opts must already be defaulted;
// max <= 0 reads the whole file.
func analyzePath(path string, max int, opts Options) (*Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	sample, err := readSample(f, opts.ChunkSize, max)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	match, err := analyze(sample, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return match, nil
}
