package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapGuess(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		hints    byteHintSet
		expected string
	}{
		{name: "utf-8 passthrough", raw: "UTF-8", expected: "UTF-8"},
		{name: "ascii promotes to utf-8", raw: "ascii", expected: "UTF-8"},
		{name: "big5", raw: "Big5", expected: "Big5"},
		{name: "gb family collapses to GBK", raw: "GB-18030", expected: "GBK"},
		{name: "gb2312 collapses to GBK", raw: "GB2312", expected: "GBK"},

		{name: "latin guess without hints", raw: "ISO-8859-1", expected: "windows-1252"},
		{name: "windows-1252 without hints", raw: "windows-1252", expected: "windows-1252"},
		{name: "latin guess with turkish hint", raw: "ISO-8859-1", hints: byteHintSet{Turkish: true}, expected: "windows-1254"},

		{name: "cyrillic guess without hints", raw: "windows-1251", expected: "windows-1251"},
		{name: "cyrillic guess with arabic hint", raw: "windows-1251", hints: byteHintSet{Arabic: true}, expected: "windows-1256"},
		{name: "cyrillic guess with mac hint", raw: "ISO-8859-5", hints: byteHintSet{MacCyrillic: true}, expected: "x-mac-cyrillic"},
		{name: "arabic hint beats mac hint", raw: "windows-1251", hints: byteHintSet{Arabic: true, MacCyrillic: true}, expected: "windows-1256"},

		{name: "windows-1256 passthrough", raw: "windows-1256", expected: "windows-1256"},
		{name: "windows-1255 passthrough", raw: "ISO-8859-8", expected: "windows-1255"},
		{name: "windows-1253 passthrough", raw: "ISO-8859-7", expected: "windows-1253"},
		{name: "windows-1254 passthrough", raw: "ISO-8859-9", expected: "windows-1254"},
		{name: "windows-1250 passthrough", raw: "ISO-8859-2", expected: "windows-1250"},

		{name: "euc-kr promotes to cp949", raw: "EUC-KR", expected: "windows-949"},
		{name: "ks_c_5601 promotes to cp949", raw: "KS_C_5601-1987", expected: "windows-949"},
		{name: "shift_jis family", raw: "Shift_JIS", expected: "shift_jis"},
		{name: "euc-jp", raw: "EUC-JP", expected: "EUC-JP"},
		{name: "mac cyrillic family", raw: "x-mac-cyrillic", expected: "x-mac-cyrillic"},
		{name: "koi8-r", raw: "KOI8-R", expected: "KOI8-R"},

		{name: "unknown falls back to utf-8", raw: "IBM420_ltr", expected: "UTF-8"},
		{name: "empty falls back to utf-8", raw: "", expected: "UTF-8"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, remapGuess(tc.raw, tc.hints))
		})
	}
}
