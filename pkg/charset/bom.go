package charset

import "bytes"

// bomSignature is one fixed byte-prefix signature for a self-announcing
// encoding.
type bomSignature struct {
	prefix []byte
	label  string
	skip   int
}

// bomSignatures is checked in order; the first matching prefix wins.
//
// Known quirk, kept for compatibility: the 2-byte UTF-16LE signature is
// checked before the 4-byte UTF-32LE one, so a UTF-32LE-marked buffer
// (FF FE 00 00) always matches UTF-16LE first and the UTF-32LE entry is
// unreachable. Flagged for product-owner review; do not reorder without a
// decision, the ordering is observable behavior.
var bomSignatures = []bomSignature{
	{prefix: []byte{0xEF, 0xBB, 0xBF}, label: "utf-8", skip: 3},
	{prefix: []byte{0xFF, 0xFE}, label: "UTF-16LE", skip: 2},
	{prefix: []byte{0xFE, 0xFF}, label: "UTF-16BE", skip: 2},
	{prefix: []byte{0xFF, 0xFE, 0x00, 0x00}, label: "UTF-32LE", skip: 4},
	{prefix: []byte{0x00, 0x00, 0xFE, 0xFF}, label: "UTF-32BE", skip: 4},
}

// sniffBOM reports the encoding announced by a byte-order mark at the start
// of the sample, along with how many bytes the mark occupies.
func sniffBOM(sample []byte) (label string, skip int, ok bool) {
	for _, sig := range bomSignatures {
		if bytes.HasPrefix(sample, sig.prefix) {
			return sig.label, sig.skip, true
		}
	}
	return "", 0, false
}
