package charset

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/stackvity/stack-charset/pkg/charset/codec"
	"github.com/stackvity/stack-charset/pkg/charset/guesser"
)

// Hooks defines callbacks for observing an analysis as it runs.
// Implementations MUST be safe for use from concurrent analysis calls; the
// pipeline itself is single-threaded but independent calls may share one
// Hooks value. Hook errors are logged and otherwise ignored: observation
// never changes the analysis outcome.
type Hooks interface {
	// OnSampleRead fires once after the sample has been acquired, with the
	// number of bytes that will be analyzed.
	OnSampleRead(n int) error
	// OnCandidateScored fires once per trial decode, in scan order.
	OnCandidateScored(sc ScoredCandidate) error
	// OnResult fires once with the final result of the call.
	OnResult(res Result) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks
// interface.
type NoOpHooks struct{}

// OnSampleRead implements Hooks.
func (NoOpHooks) OnSampleRead(int) error { return nil }

// OnCandidateScored implements Hooks.
func (NoOpHooks) OnCandidateScored(ScoredCandidate) error { return nil }

// OnResult implements Hooks.
func (NoOpHooks) OnResult(Result) error { return nil }

// Options holds the complete configuration for an analysis call. The zero
// value is usable: every zero field is replaced by its documented default
// (see constants.go) and nil capabilities by the default chardet guesser,
// x/text codec, NoOpHooks and a discarding logger.
//
// All thresholds are exposed deliberately: they are calibrated magic
// numbers, and tuning or test injection must not require touching pipeline
// logic.
type Options struct {
	// ChunkSize is the read granularity for sampled sources, in bytes.
	ChunkSize int `mapstructure:"chunkSize"`
	// MaxSampleSize caps how many bytes a bounded-sample analysis reads.
	MaxSampleSize int `mapstructure:"maxSampleSize"`

	// UTF16MinLen is the minimum sample length for the UTF-16 null-parity
	// heuristic to run.
	UTF16MinLen int `mapstructure:"utf16MinLen"`
	// UTF16Window is the maximum number of leading bytes the UTF-16
	// heuristic examines.
	UTF16Window int `mapstructure:"utf16Window"`
	// UTF16ThresholdDiv derives the null-count threshold as window/div.
	UTF16ThresholdDiv int `mapstructure:"utf16ThresholdDiv"`

	// Byte-distribution hint thresholds (see ByteHints).
	MacCyrillicUpperMin float64 `mapstructure:"macCyrillicUpperMin"`
	MacCyrillicLowerMax float64 `mapstructure:"macCyrillicLowerMax"`
	ArabicRangeMin      float64 `mapstructure:"arabicRangeMin"`
	ArabicUpperMax      float64 `mapstructure:"arabicUpperMax"`
	TurkishMarkerMin    int     `mapstructure:"turkishMarkerMin"`

	// Language hint thresholds (see LanguageHints).
	ArabicRatioMin    float64 `mapstructure:"arabicRatioMin"`
	CyrillicRatioMin  float64 `mapstructure:"cyrillicRatioMin"`
	CyrillicArabicMax float64 `mapstructure:"cyrillicArabicMax"`
	TurkishLetterMin  int     `mapstructure:"turkishLetterMin"`
	KoreanRatioMin    float64 `mapstructure:"koreanRatioMin"`

	// Scoring weights (see the decode-and-score loop in analyzer.go).
	SeedBonus             float64 `mapstructure:"seedBonus"`
	ArabicBonus           float64 `mapstructure:"arabicBonus"`
	TurkishBonus          float64 `mapstructure:"turkishBonus"`
	KoreanCP949Bonus      float64 `mapstructure:"koreanCp949Bonus"`
	KoreanEUCKRBonus      float64 `mapstructure:"koreanEucKrBonus"`
	MacCyrillicBonus      float64 `mapstructure:"macCyrillicBonus"`
	Cyrillic1251Bonus     float64 `mapstructure:"cyrillic1251Bonus"`
	ArabicOn1251Penalty   float64 `mapstructure:"arabicOn1251Penalty"`
	CyrillicOn1256Penalty float64 `mapstructure:"cyrillicOn1256Penalty"`
	MacCyrillicByteBonus  float64 `mapstructure:"macCyrillicByteBonus"`
	EarlyExitScore        float64 `mapstructure:"earlyExitScore"`

	// Fallbacks is the ordered fallback candidate list appended after the
	// seed guess. Order matters; see DefaultFallbacks.
	Fallbacks []string `mapstructure:"fallbacks"`

	// Guesser produces the statistical seed guess. Defaults to the
	// chardet-backed implementation.
	Guesser guesser.Guesser `mapstructure:"-"`
	// Codec performs trial decodes. Defaults to the x/text-backed
	// implementation.
	Codec codec.Codec `mapstructure:"-"`
	// Hooks observes the analysis. Defaults to NoOpHooks.
	Hooks Hooks `mapstructure:"-"`
	// Logger receives structured pipeline logs. Defaults to a handler that
	// discards everything.
	Logger slog.Handler `mapstructure:"-"`
}

// withDefaults returns a copy of o with zero-valued fields replaced by their
// documented defaults and nil capabilities by the default implementations.
func (o Options) withDefaults() Options {
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.MaxSampleSize == 0 {
		o.MaxSampleSize = DefaultMaxSampleSize
	}
	if o.UTF16MinLen == 0 {
		o.UTF16MinLen = DefaultUTF16MinLen
	}
	if o.UTF16Window == 0 {
		o.UTF16Window = DefaultUTF16Window
	}
	if o.UTF16ThresholdDiv == 0 {
		o.UTF16ThresholdDiv = DefaultUTF16ThresholdDiv
	}
	if o.MacCyrillicUpperMin == 0 {
		o.MacCyrillicUpperMin = DefaultMacCyrillicUpperMin
	}
	if o.MacCyrillicLowerMax == 0 {
		o.MacCyrillicLowerMax = DefaultMacCyrillicLowerMax
	}
	if o.ArabicRangeMin == 0 {
		o.ArabicRangeMin = DefaultArabicRangeMin
	}
	if o.ArabicUpperMax == 0 {
		o.ArabicUpperMax = DefaultArabicUpperMax
	}
	if o.TurkishMarkerMin == 0 {
		o.TurkishMarkerMin = DefaultTurkishMarkerMin
	}
	if o.ArabicRatioMin == 0 {
		o.ArabicRatioMin = DefaultArabicRatioMin
	}
	if o.CyrillicRatioMin == 0 {
		o.CyrillicRatioMin = DefaultCyrillicRatioMin
	}
	if o.CyrillicArabicMax == 0 {
		o.CyrillicArabicMax = DefaultCyrillicArabicMax
	}
	if o.TurkishLetterMin == 0 {
		o.TurkishLetterMin = DefaultTurkishLetterMin
	}
	if o.KoreanRatioMin == 0 {
		o.KoreanRatioMin = DefaultKoreanRatioMin
	}
	if o.SeedBonus == 0 {
		o.SeedBonus = DefaultSeedBonus
	}
	if o.ArabicBonus == 0 {
		o.ArabicBonus = DefaultArabicBonus
	}
	if o.TurkishBonus == 0 {
		o.TurkishBonus = DefaultTurkishBonus
	}
	if o.KoreanCP949Bonus == 0 {
		o.KoreanCP949Bonus = DefaultKoreanCP949Bonus
	}
	if o.KoreanEUCKRBonus == 0 {
		o.KoreanEUCKRBonus = DefaultKoreanEUCKRBonus
	}
	if o.MacCyrillicBonus == 0 {
		o.MacCyrillicBonus = DefaultMacCyrillicBonus
	}
	if o.Cyrillic1251Bonus == 0 {
		o.Cyrillic1251Bonus = DefaultCyrillic1251Bonus
	}
	if o.ArabicOn1251Penalty == 0 {
		o.ArabicOn1251Penalty = DefaultArabicOn1251Penalty
	}
	if o.CyrillicOn1256Penalty == 0 {
		o.CyrillicOn1256Penalty = DefaultCyrillicOn1256Penalty
	}
	if o.MacCyrillicByteBonus == 0 {
		o.MacCyrillicByteBonus = DefaultMacCyrillicByteBonus
	}
	if o.EarlyExitScore == 0 {
		o.EarlyExitScore = DefaultEarlyExitScore
	}
	if o.Fallbacks == nil {
		o.Fallbacks = DefaultFallbacks
	}
	if o.Guesser == nil {
		o.Guesser = guesser.NewChardetGuesser()
	}
	if o.Codec == nil {
		o.Codec = codec.NewXTextCodec()
	}
	if o.Hooks == nil {
		o.Hooks = NoOpHooks{}
	}
	if o.Logger == nil {
		o.Logger = slog.NewTextHandler(io.Discard, nil)
	}
	return o
}

// Validate checks a fully populated Options value (after defaulting) for
// nonsensical settings. Every violation is reported wrapped in
// ErrConfigValidation so callers can errors.Is against one sentinel.
func (o Options) Validate() error {
	if o.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunkSize must be positive, got %d", ErrConfigValidation, o.ChunkSize)
	}
	if o.MaxSampleSize < o.ChunkSize {
		return fmt.Errorf("%w: maxSampleSize (%d) must be at least chunkSize (%d)", ErrConfigValidation, o.MaxSampleSize, o.ChunkSize)
	}
	if o.UTF16MinLen <= 0 || o.UTF16Window <= 0 || o.UTF16ThresholdDiv <= 0 {
		return fmt.Errorf("%w: utf16 heuristic parameters must be positive", ErrConfigValidation)
	}
	ratios := map[string]float64{
		"macCyrillicUpperMin": o.MacCyrillicUpperMin,
		"macCyrillicLowerMax": o.MacCyrillicLowerMax,
		"arabicRangeMin":      o.ArabicRangeMin,
		"arabicUpperMax":      o.ArabicUpperMax,
		"arabicRatioMin":      o.ArabicRatioMin,
		"cyrillicRatioMin":    o.CyrillicRatioMin,
		"cyrillicArabicMax":   o.CyrillicArabicMax,
		"koreanRatioMin":      o.KoreanRatioMin,
	}
	for name, v := range ratios {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrConfigValidation, name, v)
		}
	}
	if o.TurkishMarkerMin < 1 || o.TurkishLetterMin < 1 {
		return fmt.Errorf("%w: hint minimum counts must be at least 1", ErrConfigValidation)
	}
	if len(o.Fallbacks) == 0 {
		return fmt.Errorf("%w: fallback candidate list cannot be empty", ErrConfigValidation)
	}
	if o.Guesser == nil {
		return fmt.Errorf("%w: Guesser implementation cannot be nil", ErrConfigValidation)
	}
	if o.Codec == nil {
		return fmt.Errorf("%w: Codec implementation cannot be nil", ErrConfigValidation)
	}
	if o.Hooks == nil {
		return fmt.Errorf("%w: Hooks implementation cannot be nil (use NoOpHooks if needed)", ErrConfigValidation)
	}
	return nil
}
