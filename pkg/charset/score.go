package charset

import "strings"

// scoreHints computes the additive heuristic delta for one candidate from
// the language hints of its own decoded text and the byte hints of the raw
// sample. The weights are calibrated against the candidate confusions that
// actually occur in the wild (1251 vs 1256 vs mac-cyrillic, 1252 vs 1254,
// EUC-KR vs CP949); see constants.go for the individual values.
func scoreHints(candidate string, lang langHintSet, bytes byteHintSet, opts Options) float64 {
	label := strings.ToLower(candidate)
	var delta float64

	if lang.Arabic && strings.Contains(label, "1256") {
		delta += opts.ArabicBonus
	}
	if lang.Turkish && strings.Contains(label, "1254") {
		delta += opts.TurkishBonus
	}
	if lang.Korean {
		if strings.Contains(label, "949") {
			delta += opts.KoreanCP949Bonus
		} else if strings.Contains(label, "euc-kr") {
			delta += opts.KoreanEUCKRBonus
		}
	}
	if lang.Cyrillic {
		if strings.Contains(label, "mac-cyrillic") {
			delta += opts.MacCyrillicBonus
		} else if strings.Contains(label, "1251") {
			delta += opts.Cyrillic1251Bonus
		}
	}

	// Cross-script penalties: decoding under the wrong one of the 1251/1256
	// pair still yields low error ratios, so the ratio alone cannot reject
	// the mismatch.
	if lang.Arabic && strings.Contains(label, "1251") {
		delta -= opts.ArabicOn1251Penalty
	}
	if lang.Cyrillic && strings.Contains(label, "1256") {
		delta -= opts.CyrillicOn1256Penalty
	}

	if bytes.MacCyrillic && strings.Contains(label, "mac-cyrillic") {
		delta += opts.MacCyrillicByteBonus
	}

	return delta
}
