// Package style defines the visual styling for redirmap's terminal
// output: semantic statuses for per-locale result lines and lipgloss
// styles for report text. Rendering falls back to plain text when the
// output is not a capable terminal.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Status classifies a per-locale operation outcome.
type Status string

const (
	StatusOK      Status = "ok"      // Table is valid / nothing to do
	StatusChanged Status = "changed" // Table was rewritten
	StatusWarn    Status = "warn"    // Succeeded with dropped entries
	StatusError   Status = "error"   // Operation failed
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusChanged:
		return pterm.NewStyle(pterm.FgCyan)
	case StatusWarn:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Label renders a fixed-width status tag, colored for terminal output.
func Label(status Status, f Format) string {
	tag := strings.ToUpper(string(status))
	for len(tag) < 7 {
		tag += " "
	}
	if f != FormatTerminal {
		return tag
	}
	return StatusStyle(status).Sprint(tag)
}

// Report styles, adaptive to light and dark terminals.
var (
	Header = lipgloss.NewStyle().Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	AddedLine = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "2"})

	RemovedLine = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "1"})
)

// RenderDiff colors the +/- lines of a table diff for terminal output.
// Other formats get the diff verbatim.
func RenderDiff(diff string, f Format) string {
	if f != FormatTerminal || diff == "" {
		return diff
	}

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+ "):
			lines[i] = AddedLine.Render(line)
		case strings.HasPrefix(line, "- "):
			lines[i] = RemovedLine.Render(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
