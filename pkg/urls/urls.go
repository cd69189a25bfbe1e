// Package urls provides parsing and normalization for document URLs.
// Document URLs have the shape /{locale}/docs/{slug}; the locale segment
// must match the fixed locale set case-sensitively.
package urls

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/locales"
)

// DecodePath percent-decodes a URL path segment by segment. Decoding whole
// paths at once would let an encoded slash change the segment structure.
func DecodePath(path string) (string, error) {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrURLMalformed, "cannot decode URL path %s", path)
		}
		segments[i] = decoded
	}
	return strings.Join(segments, "/"), nil
}

// IsDecoded reports whether percent-decoding the path would change it.
// Persisted tables store URLs fully decoded.
func IsDecoded(path string) bool {
	decoded, err := DecodePath(path)
	return err == nil && decoded == path
}

// ParseDocURL splits a document URL into locale and slug, enforcing the
// /{locale}/docs/{slug} shape and locale membership.
func ParseDocURL(u string) (locale, slug string, err error) {
	parts := strings.Split(u, "/")
	if len(parts) < 3 || parts[0] != "" || parts[1] == "" || parts[2] != "docs" {
		return "", "", errors.Newf(errors.ErrURLMalformed,
			"the URL is expected to be /$locale/docs/, was %s", u)
	}
	if !locales.IsValid(parts[1]) {
		return "", "", errors.Newf(errors.ErrLocaleUnknown,
			"'%s' not a valid locale in %s", parts[1], u)
	}
	return parts[1], strings.Join(parts[3:], "/"), nil
}

// IsVanity reports whether u is a bare locale-root URL such as /en-US/.
// Vanity targets are exempt from document resolution; the locale segment
// is matched case-insensitively here, mirroring how readers type them.
func IsVanity(u string) bool {
	parts := strings.Split(u, "/")
	if len(parts) != 3 || parts[0] != "" || parts[1] == "" || parts[2] != "" {
		return false
	}
	_, ok := locales.Canonical(parts[1])
	return ok
}

// HasScheme reports whether u is an external URL with an explicit scheme.
func HasScheme(u string) bool {
	return strings.Contains(u, "://")
}

// CheckInvalidChars rejects URLs containing characters that would corrupt
// the tab-separated table format.
func CheckInvalidChars(u string) error {
	for _, forbidden := range []string{"\n", "\t"} {
		if strings.Contains(u, forbidden) {
			return errors.Newf(errors.ErrURLInvalidChar,
				"URL contains invalid character %q: %s", forbidden, u)
		}
	}
	return nil
}
