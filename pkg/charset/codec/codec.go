// Package codec provides the decode/encode capability consumed by the
// charset analysis pipeline: given an encoding label, decode a byte slice to
// text with error substitution, or encode text back to bytes.
package codec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ErrUnsupportedEncoding indicates that a label names an encoding this codec
// cannot resolve. The analysis pipeline treats it as "skip this candidate",
// never as a fatal condition; callers of Encode should treat it as fatal.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Codec defines the interface for trial-decoding and re-encoding byte
// content under a named encoding.
//
// Stability: Public Stable API - Implementations can be provided externally.
type Codec interface {
	// Decode decodes sample under the encoding named by label. Invalid
	// sequences are substituted with U+FFFD rather than failing. It returns
	// the decoded text, the number of substituted characters, the total
	// character count (minimum 1, so ratio computations never divide by
	// zero), and whether any substitution occurred. A label the codec
	// cannot resolve yields ErrUnsupportedEncoding.
	Decode(sample []byte, label string) (text string, substituted int, total int, hadSubstitutions bool, err error)

	// Encode converts text to bytes under the encoding named by label.
	// Unlike Decode it is strict: an unresolvable label or an unencodable
	// rune is an error.
	Encode(text string, label string) ([]byte, error)
}

// xtextCodec implements Codec over the golang.org/x/text encoding tables,
// with golang.org/x/net/html/charset as a lookup fallback for labels the
// fixed table does not know.
type xtextCodec struct{}

// NewXTextCodec creates the default codec.
func NewXTextCodec() Codec {
	return &xtextCodec{}
}

// encodings maps normalized labels to x/text encodings. Keys are lowercase
// with underscores folded to hyphens; see normalizeLabel. UTF-8 is absent on
// purpose: it takes a dedicated decode path (see decodeUTF8) because the
// x/text UTF8 decoder passes bytes through instead of substituting.
var encodings = map[string]encoding.Encoding{
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),

	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"cp1250":       charmap.Windows1250,
	"cp1251":       charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"cp1253":       charmap.Windows1253,
	"cp1254":       charmap.Windows1254,
	"cp1255":       charmap.Windows1255,
	"cp1256":       charmap.Windows1256,

	"iso-8859-1": charmap.ISO8859_1,
	"latin1":     charmap.ISO8859_1,

	"x-mac-cyrillic": charmap.MacintoshCyrillic,
	"mac-cyrillic":   charmap.MacintoshCyrillic,
	"macintosh":      charmap.Macintosh,
	"mac-roman":      charmap.Macintosh,
	"koi8-r":         charmap.KOI8R,
	"koi8-u":         charmap.KOI8U,

	// x/text's EUC-KR table is the Windows-949 superset of KS X 1001, which
	// is exactly the "CP949 is canonical Korean" treatment the pipeline
	// relies on.
	"euc-kr":          korean.EUCKR,
	"windows-949":     korean.EUCKR,
	"cp949":           korean.EUCKR,
	"ks-c-5601-1987":  korean.EUCKR,
	"shift-jis":       japanese.ShiftJIS,
	"sjis":            japanese.ShiftJIS,
	"cp932":           japanese.ShiftJIS,
	"euc-jp":          japanese.EUCJP,
	"gbk":             simplifiedchinese.GBK,
	"gb2312":          simplifiedchinese.GBK,
	"gb18030":         simplifiedchinese.GB18030,
	"big5":            traditionalchinese.Big5,
}

// utf8Labels are the labels served by the dedicated UTF-8 decode path.
var utf8Labels = map[string]bool{
	"utf-8":    true,
	"utf8":     true,
	"ascii":    true,
	"us-ascii": true,
}

func normalizeLabel(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), "_", "-")
}

// lookup resolves a label to an encoding, reporting whether the label means
// UTF-8 (which has no usable x/text decoder for substitution counting).
func lookup(label string) (enc encoding.Encoding, isUTF8 bool, err error) {
	normalized := normalizeLabel(label)
	if utf8Labels[normalized] {
		return nil, true, nil
	}
	if e, ok := encodings[normalized]; ok {
		return e, false, nil
	}
	// Fall back to the WHATWG label index; it knows many aliases the fixed
	// table does not care to enumerate.
	if e, name := htmlcharset.Lookup(label); e != nil {
		if name == "utf-8" {
			return nil, true, nil
		}
		return e, false, nil
	}
	return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
}

// Decode implements the Codec interface.
func (c *xtextCodec) Decode(sample []byte, label string) (string, int, int, bool, error) {
	enc, isUTF8, err := lookup(label)
	if err != nil {
		return "", 0, 0, false, err
	}

	var text string
	if isUTF8 {
		text = decodeUTF8(sample)
	} else {
		// x/text decoders substitute U+FFFD for bytes they cannot map, so
		// an error here is a genuine fault, not invalid input.
		decoded, derr := enc.NewDecoder().Bytes(sample)
		if derr != nil {
			return "", 0, 0, false, fmt.Errorf("decoding as %q: %w", label, derr)
		}
		text = string(decoded)
	}

	substituted := strings.Count(text, "�")
	total := utf8.RuneCountInString(text)
	if total < 1 {
		total = 1
	}
	return text, substituted, total, substituted > 0, nil
}

// Encode implements the Codec interface.
func (c *xtextCodec) Encode(text string, label string) ([]byte, error) {
	enc, isUTF8, err := lookup(label)
	if err != nil {
		return nil, err
	}
	if isUTF8 {
		return []byte(text), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding as %q: %w", label, err)
	}
	return out, nil
}

// decodeUTF8 validates sample as UTF-8, substituting U+FFFD for each invalid
// byte. Unlike strings.ToValidUTF8 it substitutes per byte, so the error
// ratio reflects how much of the sample is malformed.
func decodeUTF8(sample []byte) string {
	if utf8.Valid(sample) {
		return string(sample)
	}
	var b strings.Builder
	b.Grow(len(sample))
	for i := 0; i < len(sample); {
		r, size := utf8.DecodeRune(sample[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			i++
			continue
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}
