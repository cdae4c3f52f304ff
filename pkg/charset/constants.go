package charset

// Constants defining default values for the configuration options. These are
// used when setting up Viper defaults in the configuration loading process
// and by Options.withDefaults for zero-valued fields.
//
// Every threshold below is an empirically calibrated magic number inherited
// from field tuning, not derived from first principles. Treat changes as
// behavior changes, not cleanups.
const (
	// DefaultChunkSize is the read granularity for sampled sources, in bytes.
	DefaultChunkSize = 8192
	// DefaultMaxSampleSize is the cap on how many bytes a bounded-sample
	// analysis reads, in bytes (1 MiB).
	DefaultMaxSampleSize = 1024 * 1024

	// DefaultUTF16MinLen is the minimum sample length for the UTF-16
	// null-parity heuristic to run at all.
	DefaultUTF16MinLen = 20
	// DefaultUTF16Window is the maximum number of leading bytes the UTF-16
	// null-parity heuristic examines.
	DefaultUTF16Window = 1000
	// DefaultUTF16ThresholdDiv derives the null-count threshold as
	// window/div (integer division), i.e. roughly 6.25% of the window.
	DefaultUTF16ThresholdDiv = 16

	// DefaultMacCyrillicUpperMin is the minimum ratio of bytes >= 0xE0 for
	// the mac-cyrillic byte hint.
	DefaultMacCyrillicUpperMin = 0.55
	// DefaultMacCyrillicLowerMax is the maximum ratio of bytes in
	// [0xC0, 0xE0) for the mac-cyrillic byte hint.
	DefaultMacCyrillicLowerMax = 0.35
	// DefaultArabicRangeMin is the minimum ratio of bytes in [0xC0, 0xE5]
	// for the arabic byte hint.
	DefaultArabicRangeMin = 0.35
	// DefaultArabicUpperMax is the maximum ratio of bytes >= 0xE0 for the
	// arabic byte hint.
	DefaultArabicUpperMax = 0.65
	// DefaultTurkishMarkerMin is the minimum count of the Turkish marker
	// bytes {0xF0, 0xFD, 0xFE} for the turkish byte hint.
	DefaultTurkishMarkerMin = 2

	// DefaultArabicRatioMin is the minimum ratio of Arabic-block code points
	// in decoded text for the arabic language hint.
	DefaultArabicRatioMin = 0.3
	// DefaultCyrillicRatioMin is the minimum ratio of Cyrillic-block code
	// points for the cyrillic language hint.
	DefaultCyrillicRatioMin = 0.2
	// DefaultCyrillicArabicMax suppresses the cyrillic hint when the Arabic
	// ratio is at or above this value.
	DefaultCyrillicArabicMax = 0.1
	// DefaultTurkishLetterMin is the minimum count of Turkish-specific
	// letters for the turkish language hint.
	DefaultTurkishLetterMin = 3
	// DefaultKoreanRatioMin is the minimum ratio of Hangul code points for
	// the korean language hint.
	DefaultKoreanRatioMin = 0.2

	// DefaultSeedBonus rewards the candidate that matches the seed guess.
	DefaultSeedBonus = 0.05
	// DefaultArabicBonus rewards windows-1256 when decoded text reads Arabic.
	DefaultArabicBonus = 0.5
	// DefaultTurkishBonus rewards windows-1254 when decoded text reads Turkish.
	DefaultTurkishBonus = 0.4
	// DefaultKoreanCP949Bonus rewards CP949-family candidates on Korean text.
	DefaultKoreanCP949Bonus = 0.4
	// DefaultKoreanEUCKRBonus rewards EUC-KR on Korean text; deliberately
	// lower than the CP949 bonus so the superset wins ties.
	DefaultKoreanEUCKRBonus = 0.2
	// DefaultMacCyrillicBonus rewards mac-cyrillic candidates on Cyrillic text.
	DefaultMacCyrillicBonus = 0.5
	// DefaultCyrillic1251Bonus rewards windows-1251 on Cyrillic text.
	DefaultCyrillic1251Bonus = 0.2
	// DefaultArabicOn1251Penalty penalizes windows-1251 when decoded text
	// reads Arabic (a classic cp1251/cp1256 confusion).
	DefaultArabicOn1251Penalty = 0.5
	// DefaultCyrillicOn1256Penalty penalizes windows-1256 when decoded text
	// reads Cyrillic (the reverse confusion, penalized harder).
	DefaultCyrillicOn1256Penalty = 0.9
	// DefaultMacCyrillicByteBonus rewards mac-cyrillic candidates when the
	// raw byte distribution already pointed at mac-cyrillic.
	DefaultMacCyrillicByteBonus = 0.4
	// DefaultEarlyExitScore: a substitution-free trial scoring strictly
	// above this value stops the candidate scan.
	DefaultEarlyExitScore = 1.0
)

// DefaultFallbacks is the fixed fallback candidate sequence appended after
// the seed guess. Order is a correctness-relevant contract: it drives the
// tie-break (first writer wins on equal score and ratio) and the early-exit
// behavior. Never reorder without revisiting both.
var DefaultFallbacks = []string{
	"UTF-8",
	"x-mac-cyrillic",
	"windows-1252",
	"windows-1256",
	"windows-1255",
	"windows-1253",
	"windows-1251",
	"windows-1254",
	"windows-1250",
	"windows-949",
	"Big5",
	"GBK",
	"shift_jis",
	"EUC-JP",
	"EUC-KR",
	"mac-cyrillic",
	"KOI8-R",
	"ISO-8859-1",
}
