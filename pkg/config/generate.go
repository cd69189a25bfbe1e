package config

import (
	"strings"
)

// GenerateConfigContent renders starter content for a .redirmap.toml:
// the default configuration with every value line commented out, so the
// file documents the knobs without changing any behavior.
func GenerateConfigContent() string {
	lines := strings.Split(DefaultConfigContent(), "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			out[i] = line
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			// Section headers stay active so the file keeps its shape
			out[i] = line
		default:
			out[i] = "# " + line
		}
	}

	return strings.Join(out, "\n")
}
