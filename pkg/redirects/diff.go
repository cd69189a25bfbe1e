package redirects

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line-oriented diff between two table renderings, for
// showing what a repair changed. Unchanged lines are elided; removed lines
// are prefixed with "- ", added lines with "+ ". Returns "" when the
// renderings are identical.
func Diff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()

	// Diff whole lines, not characters: each distinct line becomes one
	// rune, so a changed row reads as one deletion plus one insertion.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	decode := func(s string) []string {
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var b strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range decode(d.Text) {
			b.WriteString(prefix)
			b.WriteString(strings.TrimRight(line, "\n"))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
