package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/redirmap/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides. A double
// underscore separates nesting levels, so REDIRMAP_OUTPUT__COLOR maps
// to output.color while REDIRMAP_CONTENT_ROOT keeps its underscore.
const EnvPrefix = "REDIRMAP_"

// defaults returns the built-in configuration. The embedded
// defaults.toml that genconfig emits must agree with this map.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"content_root":      "",
		"locales":           []string{},
		"output.color":      "auto",
		"cache.locate_size": 4096,
	}
}

// Load builds the configuration: built-in defaults, then the config
// file at configPath if one exists, then environment overrides. An
// empty configPath skips the file layer.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. Project config file, when present
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", configPath)
			}
		}
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
