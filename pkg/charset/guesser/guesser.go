// Package guesser provides the statistical base-guess capability consumed by
// the charset analysis pipeline.
package guesser

import (
	"github.com/saintfish/chardet"
)

// Guesser defines the interface for producing a statistical best-guess
// encoding label from a raw byte sample.
//
// Stability: Public Stable API - Implementations can be provided externally.
// The guess is a seed, not a verdict: the pipeline remaps and re-scores it
// against trial decodes, so a wrong guess degrades accuracy but never
// correctness. A Guesser must therefore prefer returning an empty label over
// returning an error for "could not tell"; errors are reserved for genuine
// faults.
type Guesser interface {
	// Guess returns a best-guess encoding label for the sample, or "" when
	// the sample carries no usable signal. The label spelling is whatever
	// the underlying model emits; the pipeline normalizes it.
	Guess(sample []byte) (string, error)
}

// chardetGuesser implements Guesser using the saintfish/chardet port of the
// ICU charset detector.
type chardetGuesser struct {
	detector *chardet.Detector
}

// NewChardetGuesser creates the default statistical guesser.
func NewChardetGuesser() Guesser {
	return &chardetGuesser{detector: chardet.NewTextDetector()}
}

// Guess implements the Guesser interface.
func (g *chardetGuesser) Guess(sample []byte) (string, error) {
	if len(sample) == 0 {
		return "", nil
	}

	// The ICU recognizers rank plain ASCII as weak ISO-8859-1 evidence,
	// which would drag pure-ASCII input away from UTF-8. Report it as ascii
	// and let the remap table settle it.
	if isASCII(sample) {
		return "ascii", nil
	}

	result, err := g.detector.DetectBest(sample)
	if err != nil {
		// chardet returns an error when no recognizer matched at all.
		// That is an "absent signal", not a fault.
		return "", nil
	}
	return result.Charset, nil
}

func isASCII(sample []byte) bool {
	for _, b := range sample {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
