// Package locales holds the fixed set of locales the documentation corpus
// is published in. The set is versioned with the tool, not configuration:
// a locale is added here when the corpus grows one.
package locales

import "strings"

// valid maps the lowercased locale code to its canonical casing.
var valid = map[string]string{
	"en-us": "en-US",
	"es":    "es",
	"fr":    "fr",
	"ja":    "ja",
	"ko":    "ko",
	"pt-br": "pt-BR",
	"ru":    "ru",
	"zh-cn": "zh-CN",
	"zh-tw": "zh-TW",
}

// all is the canonical list, ordered for deterministic enumeration.
var all = []string{
	"en-US",
	"es",
	"fr",
	"ja",
	"ko",
	"pt-BR",
	"ru",
	"zh-CN",
	"zh-TW",
}

// IsValid reports whether code is a recognized locale in its canonical
// casing. URL locale segments are matched case-sensitively: "en-US" is a
// valid segment, "en-us" is not.
func IsValid(code string) bool {
	canonical, ok := valid[strings.ToLower(code)]
	return ok && canonical == code
}

// Canonical returns the canonical casing for a locale code, matched
// case-insensitively.
func Canonical(code string) (string, bool) {
	canonical, ok := valid[strings.ToLower(code)]
	return canonical, ok
}

// All returns the canonical locale codes in stable order.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// Dir returns the on-disk directory name for a locale. Content folders are
// always lowercased regardless of the canonical casing in URLs.
func Dir(code string) string {
	return strings.ToLower(code)
}
