package cms

import "strings"

// PrimaryLocale is the fallback target for partially translated pages.
const PrimaryLocale = "en"

var supportedLocales = []string{"en", "ar", "ru"}

// SupportedLocales returns the fixed set of locale codes the site serves.
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

func IsSupportedLocale(code string) bool {
	for _, l := range supportedLocales {
		if l == code {
			return true
		}
	}
	return false
}

// NormalizeLocale lowercases and trims a requested locale code, defaulting to
// the primary locale when empty. Unrecognized codes are returned as-is: the
// resolver treats anything that is not the primary locale as a fallback
// candidate, so an unknown code simply resolves to primary-locale content.
func NormalizeLocale(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return PrimaryLocale
	}
	return code
}
