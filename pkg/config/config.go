package config

import (
	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/locales"
)

// Config is the resolved redirmap configuration: built-in defaults,
// overlaid with the content root's .redirmap.toml, overlaid with
// REDIRMAP_* environment variables.
type Config struct {
	// ContentRoot overrides content-root discovery when non-empty.
	ContentRoot string `koanf:"content_root"`

	// Locales restricts table operations to a subset of locales.
	// Empty means every known locale.
	Locales []string `koanf:"locales"`

	Output Output `koanf:"output"`
	Cache  Cache  `koanf:"cache"`
}

// Output holds terminal output settings.
type Output struct {
	// Color is "auto", "always", or "never".
	Color string `koanf:"color"`
}

// Cache holds cache sizing knobs.
type Cache struct {
	// LocateSize is the entry count of the document-locate LRU cache.
	LocateSize int `koanf:"locate_size"`
}

// ActiveLocales returns the locales operations should cover.
func (c *Config) ActiveLocales() []string {
	if len(c.Locales) == 0 {
		return locales.All()
	}
	return c.Locales
}

// validate checks field values and normalizes locale casing in place.
func (c *Config) validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigParse,
			"output.color must be auto, always, or never, was %q", c.Output.Color)
	}
	if c.Cache.LocateSize <= 0 {
		return errors.Newf(errors.ErrConfigParse,
			"cache.locate_size must be positive, was %d", c.Cache.LocateSize)
	}
	for i, loc := range c.Locales {
		canonical, ok := locales.Canonical(loc)
		if !ok {
			return errors.Newf(errors.ErrLocaleUnknown, "'%s' not a valid locale", loc)
		}
		c.Locales[i] = canonical
	}
	return nil
}
