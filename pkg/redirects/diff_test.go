package redirects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	before := "# FROM-URL\tTO-URL\n" +
		"/en-US/docs/A\t/en-US/docs/B\n" +
		"/en-US/docs/B\t/en-US/docs/C\n"
	after := "# FROM-URL\tTO-URL\n" +
		"/en-US/docs/A\t/en-US/docs/C\n" +
		"/en-US/docs/B\t/en-US/docs/C\n"

	diff := Diff(before, after)

	assert.Contains(t, diff, "- /en-US/docs/A\t/en-US/docs/B")
	assert.Contains(t, diff, "+ /en-US/docs/A\t/en-US/docs/C")

	// Unchanged rows and the header are elided
	assert.NotContains(t, diff, "/en-US/docs/B\t")
	assert.NotContains(t, diff, "# FROM-URL")
}

func TestDiffIdentical(t *testing.T) {
	table := "# FROM-URL\tTO-URL\n/en-US/docs/A\t/en-US/docs/B\n"
	assert.Equal(t, "", Diff(table, table))
}

func TestDiffPureRemoval(t *testing.T) {
	before := "# FROM-URL\tTO-URL\n" +
		"/en-US/docs/A\t/en-US/docs/B\n" +
		"/en-US/docs/X\t/en-US/docs/Y\n"
	after := "# FROM-URL\tTO-URL\n" +
		"/en-US/docs/A\t/en-US/docs/B\n"

	diff := Diff(before, after)
	assert.Equal(t, "- /en-US/docs/X\t/en-US/docs/Y\n", diff)
}
