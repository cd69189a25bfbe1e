package redirects

import (
	"strings"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/types"
	"github.com/arthur-debert/redirmap/pkg/urls"
)

// Header is the first line of every persisted redirect table.
const Header = "# FROM-URL\tTO-URL"

// ParseTable parses raw table content, tolerating damage: rows that are
// malformed, not percent-decoded, or that repeat an earlier source are
// collected as issues and skipped, so a broken table loads as far as it
// can and heals on the next write.
func ParseTable(raw []byte) ([]types.Pair, []error) {
	return parseTable(raw)
}

// ParseTableStrict parses raw table content and fails on the first
// integrity violation instead of skipping the offending row.
func ParseTableStrict(raw []byte) ([]types.Pair, error) {
	pairs, issues := parseTable(raw)
	if len(issues) > 0 {
		return nil, issues[0]
	}
	return pairs, nil
}

func parseTable(raw []byte) ([]types.Pair, []error) {
	var pairs []types.Pair
	var issues []error

	// Sources must be unique ignoring case; first occurrence wins.
	seen := make(map[string]int)

	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		lineno := i + 1
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		from, to, ok := splitRow(line)
		if !ok {
			issues = append(issues, errors.Newf(errors.ErrTableFormat,
				"line %d is not a tab-separated pair: %q", lineno, line))
			continue
		}

		// Stored internal URLs are kept fully decoded so they line up with
		// the decoded lookup keys. External targets keep their escapes:
		// decoding could change what they point at.
		if !urls.IsDecoded(from) || (strings.HasPrefix(to, "/") && !urls.IsDecoded(to)) {
			issues = append(issues, errors.Newf(errors.ErrURLNotDecoded,
				"line %d contains encoded URLs: %s", lineno, line))
			continue
		}

		key := strings.ToLower(from)
		if first, dup := seen[key]; dup {
			issues = append(issues, errors.Newf(errors.ErrDuplicateSource,
				"line %d repeats the source on line %d: %s", lineno, first, from))
			continue
		}
		seen[key] = lineno

		pairs = append(pairs, types.Pair{From: from, To: to})
	}

	return pairs, issues
}

// splitRow splits a table row on the first run of tab characters.
func splitRow(line string) (from, to string, ok bool) {
	i := strings.IndexByte(line, '\t')
	if i <= 0 {
		return "", "", false
	}
	from = line[:i]
	to = strings.TrimLeft(line[i:], "\t")
	if to == "" {
		return "", "", false
	}
	return from, to, true
}
