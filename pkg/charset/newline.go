package charset

// DetectNewline classifies the dominant line-ending convention of a raw byte
// sample in a single linear scan. CRLF wins over any number of bare LF or CR
// occurrences, bare LF wins over bare CR, and a sample with no line
// terminator at all defaults to LF.
//
// The scan consumes "\r\n" as one unit, so the LF of a CRLF pair is never
// double-counted as a bare LF.
func DetectNewline(sample []byte) Newline {
	var hasCRLF, hasLF, hasCR bool

	for i := 0; i < len(sample); i++ {
		switch sample[i] {
		case '\r':
			if i+1 < len(sample) && sample[i+1] == '\n' {
				hasCRLF = true
				i++
			} else {
				hasCR = true
			}
		case '\n':
			hasLF = true
		}
	}

	switch {
	case hasCRLF:
		return NewlineCRLF
	case hasLF:
		return NewlineLF
	case hasCR:
		return NewlineCR
	default:
		return NewlineLF
	}
}
