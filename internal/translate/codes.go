package translate

import "strings"

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// sameLanguage compares two codes ignoring case and region.
func sameLanguage(a, b string) bool {
	return baseCode(a) == baseCode(b) && baseCode(a) != ""
}

func baseCode(code string) string {
	code = normalizeCode(code)
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}

// libreCode maps a catalog code onto LibreTranslate's language set.
func libreCode(code string) string {
	code = normalizeCode(code)
	switch code {
	case "":
		return "auto"
	case "zh-cn", "zh-tw", "zh-hans", "zh-hant":
		return "zh"
	}
	return baseCode(code)
}

// fromLibreCode maps LibreTranslate's answer back onto catalog codes.
func fromLibreCode(code string) string {
	code = normalizeCode(code)
	if code == "zh" {
		return "zh-cn"
	}
	return code
}

// myMemoryCode maps a catalog code onto the RFC 3066 tags MyMemory expects.
func myMemoryCode(code string) string {
	code = normalizeCode(code)
	if code == "" {
		return "autodetect"
	}
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i] + "-" + strings.ToUpper(code[i+1:])
	}
	return code
}
