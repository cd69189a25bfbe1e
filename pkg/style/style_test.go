package style_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/redirmap/pkg/style"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   style.Format
		expected string
	}{
		{
			name:     "auto format",
			format:   style.FormatAuto,
			expected: "auto",
		},
		{
			name:     "terminal format",
			format:   style.FormatTerminal,
			expected: "term",
		},
		{
			name:     "text format",
			format:   style.FormatText,
			expected: "text",
		},
		{
			name:     "json format",
			format:   style.FormatJSON,
			expected: "json",
		},
		{
			name:     "unknown format",
			format:   style.Format(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected style.Format
		wantErr  bool
	}{
		{input: "auto", expected: style.FormatAuto},
		{input: "", expected: style.FormatAuto},
		{input: "term", expected: style.FormatTerminal},
		{input: "terminal", expected: style.FormatTerminal},
		{input: "TEXT", expected: style.FormatText},
		{input: "plain", expected: style.FormatText},
		{input: "json", expected: style.FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := style.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestResolveFormatHonorsColorSetting(t *testing.T) {
	// Explicit formats pass through untouched
	assert.Equal(t, style.FormatJSON, style.ResolveFormat(style.FormatJSON, "always", os.Stdout))
	assert.Equal(t, style.FormatText, style.ResolveFormat(style.FormatText, "always", os.Stdout))

	// Color preferences decide auto without consulting the terminal
	assert.Equal(t, style.FormatTerminal, style.ResolveFormat(style.FormatAuto, "always", os.Stdout))
	assert.Equal(t, style.FormatText, style.ResolveFormat(style.FormatAuto, "never", os.Stdout))
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, style.FormatText, style.DetectFormat(os.Stdout))
	})

	t.Run("pipe output is text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		r, w, err := os.Pipe()
		if err != nil {
			t.Fatal(err)
		}
		defer r.Close()
		defer w.Close()

		assert.Equal(t, style.FormatText, style.DetectFormat(w))
	})
}

func TestLabelPlain(t *testing.T) {
	// Text format gets an uncolored fixed-width tag
	assert.Equal(t, "OK     ", style.Label(style.StatusOK, style.FormatText))
	assert.Equal(t, "CHANGED", style.Label(style.StatusChanged, style.FormatText))
	assert.Equal(t, "ERROR  ", style.Label(style.StatusError, style.FormatText))
}

func TestRenderDiffPlain(t *testing.T) {
	diff := "- /en-US/docs/A\t/en-US/docs/B\n+ /en-US/docs/A\t/en-US/docs/C\n"

	// Non-terminal formats pass the diff through verbatim
	assert.Equal(t, diff, style.RenderDiff(diff, style.FormatText))
	assert.Equal(t, diff, style.RenderDiff(diff, style.FormatJSON))
	assert.Empty(t, style.RenderDiff("", style.FormatTerminal))
}
