package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		label    string
		expected string
	}{
		{"UTF-8", "utf_8"},
		{"utf8", "utf_8"},
		{"UTF-16LE", "utf_16le"},
		{"UTF-16BE", "utf_16be"},
		{"utf-16", "utf_16"},
		{"ISO-8859-1", "latin_1"},
		{"latin1", "latin_1"},
		{"windows-1252", "cp1252"},
		{"windows-1251", "cp1251"},
		{"windows-949", "cp949"},
		{"x-mac-cyrillic", "mac_cyrillic"},
		{"mac-cyrillic", "mac_cyrillic"},
		{"macintosh", "mac_roman"},
		{"KOI8-R", "koi8_r"},
		{"Shift_JIS", "shift_jis"},
		{"EUC-JP", "euc_jp"},
		{"Big5", "big5"},
		{"GBK", "gbk"},
		// cp_NNNN collapse for labels outside the table.
		{"CP_1125", "cp1125"},
		{"cp_866", "cp866"},
		// Unknown labels pass through in normalized spelling.
		{"IBM420-ltr", "ibm420_ltr"},
		{"tis-620", "tis_620"},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeName(tc.label))
		})
	}
}

func TestPostProcessWinner(t *testing.T) {
	assert.Equal(t, "windows-949", postProcessWinner("EUC-KR"))
	assert.Equal(t, "windows-949", postProcessWinner("euc_kr"))
	assert.Equal(t, "windows-949", postProcessWinner("x-euc-kr"))
	assert.Equal(t, "windows-1251", postProcessWinner("windows-1251"))
	assert.Equal(t, "UTF-8", postProcessWinner("UTF-8"))
}
