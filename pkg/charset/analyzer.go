package charset

import (
	"fmt"
	"log/slog"
	"math"
)

// Analyze runs the full detection pipeline over an in-memory byte sample and
// returns the canonical encoding name and newline style. It is a pure
// function of (sample, options): no state survives the call, and concurrent
// calls on independent samples need no synchronization.
func Analyze(sample []byte, opts Options) (Result, error) {
	match, err := analyze(sample, opts.withDefaults())
	if err != nil {
		return Result{}, err
	}
	return match.Result, nil
}

// analyze is the pipeline core shared by every entry point. opts must
// already be defaulted.
func analyze(sample []byte, opts Options) (*Match, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := slog.New(opts.Logger)

	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: no bytes to analyze", ErrEmptySource)
	}
	if err := opts.Hooks.OnSampleRead(len(sample)); err != nil {
		logger.Warn("OnSampleRead hook failed", slog.Any("error", err))
	}

	newlines := DetectNewline(sample)
	byteHints := analyzeBytePatterns(sample, opts)
	match := &Match{RawBytes: sample}

	// BOM has absolute priority: a matched signature fixes the encoding and
	// only the skip length is used downstream. The candidate scan never
	// runs, so trailing content cannot overturn the mark.
	if label, skip, ok := sniffBOM(sample); ok {
		logger.Debug("BOM signature matched",
			slog.String("label", label), slog.Int("skip", skip))

		text, substituted, total, _, err := opts.Codec.Decode(sample[skip:], label)
		if err != nil {
			// The mark alone decides; an undecodable label only costs the
			// decoded-text payload.
			logger.Debug("BOM-fixed encoding not decodable",
				slog.String("label", label), slog.Any("error", err))
		} else {
			if total < 1 {
				total = 1
			}
			errorRatio := float64(substituted) / float64(total)
			match.DecodedText = text
			sc := ScoredCandidate{
				Candidate:  label,
				Score:      1 - errorRatio + opts.SeedBonus,
				ErrorRatio: errorRatio,
			}
			match.Candidates = append(match.Candidates, sc)
			match.Winner = sc
			if herr := opts.Hooks.OnCandidateScored(sc); herr != nil {
				logger.Warn("OnCandidateScored hook failed", slog.Any("error", herr))
			}
		}
		if match.Winner.Candidate == "" {
			match.Winner = ScoredCandidate{Candidate: label}
		}

		match.Result = finalize(label, newlines, opts, logger)
		return match, nil
	}

	// Seed guess: BOM-less UTF-16 via null parity first, then the
	// statistical guesser reclassified by the byte-distribution hints.
	var seed string
	if utf16Label, ok := detectUTF16Pattern(sample, opts); ok {
		logger.Debug("UTF-16 null-parity verdict", slog.String("label", utf16Label))
		seed = utf16Label
	} else {
		raw, err := opts.Guesser.Guess(sample)
		if err != nil {
			logger.Debug("base guesser failed, falling back",
				slog.Any("error", err))
			raw = ""
		}
		seed = remapGuess(raw, byteHints)
		logger.Debug("seed guess",
			slog.String("raw", raw), slog.String("remapped", seed))
	}

	candidates := buildCandidates(seed, opts.Fallbacks)
	winner := scanCandidates(sample, candidates, seed, byteHints, opts, logger, match)

	match.Result = finalize(winner, newlines, opts, logger)
	return match, nil
}

// scanCandidates trial-decodes each candidate in registry order, scores it,
// and keeps the running best under the ordering rule: strictly greater score
// wins, an exact score tie is broken by strictly lower error ratio, and
// otherwise the earlier candidate is retained. A substitution-free trial
// scoring above EarlyExitScore stops the scan. Scored trials are appended to
// match.Candidates as a side effect.
func scanCandidates(sample []byte, candidates []string, seed string, byteHints byteHintSet, opts Options, logger *slog.Logger, match *Match) string {
	bestScore := math.Inf(-1)
	minErrorRatio := 1.0
	var bestLabel string
	found := false

	for _, candidate := range candidates {
		text, substituted, total, hadSubstitutions, err := opts.Codec.Decode(sample, candidate)
		if err != nil {
			// Unsupported labels are skipped, never fatal.
			logger.Debug("skipping candidate",
				slog.String("candidate", candidate), slog.Any("error", err))
			continue
		}
		if total < 1 {
			total = 1
		}
		errorRatio := float64(substituted) / float64(total)

		score := 1 - errorRatio
		if candidate == seed {
			score += opts.SeedBonus
		}
		langHints := detectLanguageHints(text, opts)
		score += scoreHints(candidate, langHints, byteHints, opts)

		sc := ScoredCandidate{Candidate: candidate, Score: score, ErrorRatio: errorRatio}
		match.Candidates = append(match.Candidates, sc)
		if herr := opts.Hooks.OnCandidateScored(sc); herr != nil {
			logger.Warn("OnCandidateScored hook failed", slog.Any("error", herr))
		}

		if score > bestScore || (score == bestScore && errorRatio < minErrorRatio) {
			bestScore = score
			minErrorRatio = errorRatio
			bestLabel = candidate
			match.DecodedText = text
			match.Winner = sc
			found = true

			// A clean decode that also earned a heuristic bonus cannot be
			// beaten on error ratio and has already won its tie-breaks;
			// later candidates with the exact same score must not displace
			// it, so stopping here is part of the contract, not merely an
			// optimization.
			if !hadSubstitutions && errorRatio == 0 && score > opts.EarlyExitScore {
				logger.Debug("early exit",
					slog.String("candidate", candidate), slog.Float64("score", score))
				break
			}
		}
	}

	if !found {
		// Every candidate was unsupported. Deterministic utf-8 fallback.
		logger.Debug("no candidate decodable, defaulting to UTF-8")
		match.Winner = ScoredCandidate{Candidate: "UTF-8"}
		return "UTF-8"
	}
	return bestLabel
}

// finalize applies the Korean canonicalization and name normalization to the
// winning label and fires the result hook.
func finalize(winner string, newlines Newline, opts Options, logger *slog.Logger) Result {
	res := Result{
		Encoding: NormalizeName(postProcessWinner(winner)),
		Newlines: newlines,
	}
	if err := opts.Hooks.OnResult(res); err != nil {
		logger.Warn("OnResult hook failed", slog.Any("error", err))
	}
	logger.Debug("analysis complete",
		slog.String("encoding", res.Encoding), slog.String("newlines", string(res.Newlines)))
	return res
}
