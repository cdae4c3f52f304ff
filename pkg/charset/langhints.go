package charset

// langHintSet holds the language hints inferred from Unicode code-point
// ranges over one trial's decoded text.
type langHintSet struct {
	Arabic   bool
	Cyrillic bool
	Turkish  bool
	Korean   bool
}

// turkishLetters are the six Turkish-specific letters that do not occur in
// other Latin-script languages.
var turkishLetters = map[rune]bool{
	'ğ': true, 'Ğ': true,
	'ı': true, 'İ': true,
	'ş': true, 'Ş': true,
}

func isArabicRune(r rune) bool {
	// Arabic block + Arabic Presentation Forms A and B.
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

func isCyrillicRune(r rune) bool {
	// Cyrillic + Cyrillic Supplement.
	return r >= 0x0400 && r <= 0x052F
}

func isKoreanRune(r rune) bool {
	// Hangul Syllables + Hangul Jamo + Hangul Compatibility Jamo.
	return (r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0x1100 && r <= 0x11FF) ||
		(r >= 0x3130 && r <= 0x318F)
}

// detectLanguageHints counts script-specific code points in decoded text and
// emits hints for ratios above the configured thresholds. Ratios use the
// total character count with a minimum divisor of 1, so empty text is safe
// and hint-free.
func detectLanguageHints(text string, opts Options) langHintSet {
	var hints langHintSet

	var total, arabic, cyrillic, turkish, korean int
	for _, r := range text {
		total++
		switch {
		case isArabicRune(r):
			arabic++
		case isCyrillicRune(r):
			cyrillic++
		case isKoreanRune(r):
			korean++
		case turkishLetters[r]:
			turkish++
		}
	}
	if total < 1 {
		total = 1
	}

	arabicRatio := float64(arabic) / float64(total)
	cyrillicRatio := float64(cyrillic) / float64(total)
	koreanRatio := float64(korean) / float64(total)

	if arabicRatio > opts.ArabicRatioMin {
		hints.Arabic = true
	}
	// Cyrillic is suppressed when the text also reads substantially Arabic;
	// cp1251-vs-cp1256 mixups produce exactly that combination.
	if cyrillicRatio > opts.CyrillicRatioMin && arabicRatio < opts.CyrillicArabicMax {
		hints.Cyrillic = true
	}
	if turkish >= opts.TurkishLetterMin {
		hints.Turkish = true
	}
	if koreanRatio > opts.KoreanRatioMin {
		hints.Korean = true
	}

	return hints
}
