package urls

import (
	"strings"

	"github.com/arthur-debert/redirmap/pkg/locales"
)

// localeAliases maps legacy locale spellings, as they appear in old inbound
// links, to their current canonical form. Keys are lowercase.
var localeAliases = map[string]string{
	"en":    "en-US",
	"en_us": "en-US",
	"cn":    "zh-CN",
	"zh":    "zh-CN",
	"zh_cn": "zh-CN",
	"zh_tw": "zh-TW",
	"pt":    "pt-BR",
	"pt_br": "pt-BR",
	"jp":    "ja",
	"kr":    "ko",
	"ko_kr": "ko",
	"es_es": "es",
	"fr_fr": "fr",
}

// retiredLocales holds locales whose content was folded into en-US.
// Keys are lowercase.
var retiredLocales = map[string]bool{
	"ar":    true,
	"bg":    true,
	"bn":    true,
	"ca":    true,
	"cs":    true,
	"de":    true,
	"el":    true,
	"fa":    true,
	"fi":    true,
	"he":    true,
	"hi-in": true,
	"hu":    true,
	"id":    true,
	"it":    true,
	"kab":   true,
	"ms":    true,
	"my":    true,
	"nl":    true,
	"pl":    true,
	"pt-pt": true,
	"sv-se": true,
	"th":    true,
	"tr":    true,
	"uk":    true,
	"vi":    true,
}

// ResolveFundamental applies the built-in locale rewrites to u: legacy
// locale aliases and retired locales fold into current canonical locales,
// and miscased current locales are fixed to canonical casing. It returns
// the rewritten URL and whether a rewrite applied.
func ResolveFundamental(u string) (string, bool) {
	if !strings.HasPrefix(u, "/") {
		return u, false
	}
	segment, rest := splitFirstSegment(u)
	if segment == "" {
		return u, false
	}
	lower := strings.ToLower(segment)
	if canonical, ok := localeAliases[lower]; ok {
		return "/" + canonical + rest, true
	}
	if retiredLocales[lower] {
		return "/en-US" + rest, true
	}
	if canonical, ok := locales.Canonical(segment); ok && canonical != segment {
		return "/" + canonical + rest, true
	}
	return u, false
}

// splitFirstSegment returns the first path segment of u and the remainder
// including its leading slash, if any.
func splitFirstSegment(u string) (segment, rest string) {
	trimmed := u[1:]
	if i := strings.Index(trimmed, "/"); i >= 0 {
		return trimmed[:i], trimmed[i:]
	}
	return trimmed, ""
}
