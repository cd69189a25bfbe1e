package config

import (
	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultConfigContent returns the built-in default configuration as
// TOML. It mirrors defaults() and exists for genconfig output.
func DefaultConfigContent() string {
	return string(defaultConfig)
}
