package charset

// byteHintSet holds the qualitative hints derived from the raw byte
// histogram of a sample, before any decode attempt.
type byteHintSet struct {
	// MacCyrillic: the high-byte mass is concentrated in [0xE0, 0xFF],
	// which Mac Cyrillic exhibits and Arabic code pages do not.
	MacCyrillic bool
	// Arabic: bytes spread across [0xC0, 0xE5] without the extreme upper
	// concentration. Mutually exclusive with MacCyrillic.
	Arabic bool
	// Turkish: the sample contains the code-page-1254 marker bytes
	// {0xF0, 0xFD, 0xFE} (ğ, ı, ş) at least TurkishMarkerMin times.
	// Independent of the other two hints.
	Turkish bool
}

// analyzeBytePatterns computes byte-value-range ratios over the whole sample
// and derives script hints from them. A pure-ASCII sample (no byte >= 0x80)
// yields the empty set immediately.
func analyzeBytePatterns(sample []byte, opts Options) byteHintSet {
	var hints byteHintSet
	if len(sample) == 0 {
		return hints
	}

	var highBytes, lowerHigh, upperHigh, arabicRange, turkishMarkers int
	for _, b := range sample {
		if b >= 0x80 {
			highBytes++
		}
		if b >= 0xC0 && b < 0xE0 {
			lowerHigh++
		}
		if b >= 0xE0 {
			upperHigh++
		}
		if b >= 0xC0 && b <= 0xE5 {
			arabicRange++
		}
		if b == 0xF0 || b == 0xFD || b == 0xFE {
			turkishMarkers++
		}
	}
	if highBytes == 0 {
		// Pure ASCII
		return hints
	}

	total := float64(len(sample))
	lowerRatio := float64(lowerHigh) / total
	upperRatio := float64(upperHigh) / total
	arabicRatio := float64(arabicRange) / total

	if upperRatio > opts.MacCyrillicUpperMin && lowerRatio < opts.MacCyrillicLowerMax {
		hints.MacCyrillic = true
	} else if arabicRatio > opts.ArabicRangeMin && upperRatio < opts.ArabicUpperMax {
		hints.Arabic = true
	}

	if turkishMarkers >= opts.TurkishMarkerMin {
		hints.Turkish = true
	}

	return hints
}

// detectUTF16Pattern catches BOM-less UTF-16 through null-byte parity:
// mostly-ASCII UTF-16LE text has null bytes at odd offsets, UTF-16BE at even
// offsets. Samples shorter than UTF16MinLen give no verdict; longer samples
// are judged on their first UTF16Window bytes.
func detectUTF16Pattern(sample []byte, opts Options) (string, bool) {
	if len(sample) < opts.UTF16MinLen {
		return "", false
	}

	window := len(sample)
	if window > opts.UTF16Window {
		window = opts.UTF16Window
	}

	var evenNulls, oddNulls int
	for i := 0; i < window; i++ {
		if sample[i] != 0 {
			continue
		}
		if i%2 == 0 {
			evenNulls++
		} else {
			oddNulls++
		}
	}

	// Integer division on both the threshold and its half is deliberate.
	threshold := window / opts.UTF16ThresholdDiv

	if oddNulls > threshold && evenNulls < threshold/2 {
		return "UTF-16LE", true
	}
	if evenNulls > threshold && oddNulls < threshold/2 {
		return "UTF-16BE", true
	}
	return "", false
}
