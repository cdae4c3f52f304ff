package charset

import "strings"

// canonicalNames maps normalized (lowercase, underscore-separated) encoding
// labels to their canonical identifiers. Labels absent from the table pass
// through unchanged, except the cp_NNNN collapse handled in NormalizeName.
var canonicalNames = map[string]string{
	"utf_8": "utf_8",
	"utf8":  "utf_8",

	"utf_16":   "utf_16",
	"utf16":    "utf_16",
	"utf_16_le": "utf_16le",
	"utf16_le":  "utf_16le",
	"utf_16le":  "utf_16le",
	"utf16le":   "utf_16le",
	"utf_16_be": "utf_16be",
	"utf16_be":  "utf_16be",
	"utf_16be":  "utf_16be",
	"utf16be":   "utf_16be",

	"iso_8859_1": "latin_1",
	"iso8859_1":  "latin_1",
	"latin_1":    "latin_1",
	"latin1":     "latin_1",

	"windows_1252": "cp1252",
	"windows_1256": "cp1256",
	"windows_1255": "cp1255",
	"windows_1253": "cp1253",
	"windows_1251": "cp1251",
	"windows_1254": "cp1254",
	"windows_1250": "cp1250",
	"windows_949":  "cp949",

	"shift_jis":      "shift_jis",
	"shift_jis_2004": "shift_jis",
	"euc_jp":         "euc_jp",
	"euc_kr":         "euc_kr",
	"gb2312":         "gb2312",
	"gb_2312":        "gb2312",
	"gbk":            "gbk",
	"big5":           "big5",

	"macintosh":      "mac_roman",
	"mac_roman":      "mac_roman",
	"mac_cyrillic":   "mac_cyrillic",
	"x_mac_cyrillic": "mac_cyrillic",
	"koi8_r":         "koi8_r",
	"koi8r":          "koi8_r",
	"koi8_u":         "koi8_u",
}

// NormalizeName maps an encoding label to its canonical identifier:
// lowercase, hyphens folded to underscores, then the finite table above,
// with any remaining cp_NNNN form collapsing its underscore. Unknown labels
// pass through in their normalized spelling.
func NormalizeName(label string) string {
	normalized := strings.ReplaceAll(strings.ToLower(label), "-", "_")

	if canonical, ok := canonicalNames[normalized]; ok {
		return canonical
	}
	if strings.HasPrefix(normalized, "cp_") {
		return strings.ReplaceAll(normalized, "_", "")
	}
	return normalized
}

// postProcessWinner applies the fixed Korean canonicalization before
// normalization: a winning EUC-KR label (any spelling) is rewritten to
// windows-949, because the EUC-KR trials are decoded with the CP949
// superset table anyway and the narrower name would under-promise.
func postProcessWinner(label string) string {
	lower := strings.ToLower(label)
	if strings.Contains(lower, "euc-kr") || strings.Contains(lower, "euc_kr") {
		return "windows-949"
	}
	return label
}
