package charset

import "strings"

// remapGuess reclassifies the raw statistical guess through a fixed table,
// consulting the byte-distribution hints where the guess is ambiguous. The
// statistical models behind the guess cannot tell apart code pages that
// share byte statistics (1252 vs 1254, 1251 vs mac-cyrillic vs 1256); the
// hints break those ties. Anything unrecognized falls back to UTF-8.
//
// Output spellings match the fallback candidate list exactly so that the
// registry's dedup by string equality works.
func remapGuess(raw string, hints byteHintSet) string {
	normalized := strings.ReplaceAll(strings.ToLower(raw), "-", "_")

	switch normalized {
	case "utf_8", "utf8", "ascii":
		return "UTF-8"
	case "big5", "big_5":
		return "Big5"
	case "gb2312", "gb_2312", "gbk", "gb18030", "gb_18030":
		return "GBK"
	case "windows_1252", "cp1252", "iso_8859_1":
		if hints.Turkish {
			return "windows-1254"
		}
		return "windows-1252"
	case "windows_1256", "cp1256", "iso_8859_6":
		return "windows-1256"
	case "windows_1255", "cp1255", "iso_8859_8", "iso_8859_8_i":
		return "windows-1255"
	case "windows_1253", "cp1253", "iso_8859_7":
		return "windows-1253"
	case "windows_1251", "cp1251", "iso_8859_5":
		if hints.Arabic {
			return "windows-1256"
		}
		if hints.MacCyrillic {
			return "x-mac-cyrillic"
		}
		return "windows-1251"
	case "windows_1254", "cp1254", "iso_8859_9":
		return "windows-1254"
	case "windows_1250", "cp1250", "iso_8859_2":
		return "windows-1250"
	case "euc_kr", "cp949", "windows_949", "ks_c_5601_1987":
		// CP949 is treated as the canonical Korean superset.
		return "windows-949"
	case "shift_jis", "shift_jisx0213", "cp932":
		return "shift_jis"
	case "euc_jp":
		return "EUC-JP"
	case "mac_cyrillic", "x_mac_cyrillic":
		return "x-mac-cyrillic"
	case "koi8_r", "koi8r":
		return "KOI8-R"
	default:
		return "UTF-8"
	}
}
