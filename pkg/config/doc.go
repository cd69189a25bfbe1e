// Package config handles configuration management for redirmap.
// It layers built-in defaults, the content root's .redirmap.toml, and
// REDIRMAP_* environment variables into a single Config.
package config
