package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FACEITSTATS_"

var validate = validator.New()

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) at path, or FACEITSTATS_CONFIG when path is empty
//  3. env (prefix FACEITSTATS_)
//
// An empty api_key falls back to FACEIT_API_KEY, then to the key file in Dir().
func Load(ctx context.Context, path string) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "read config %s", path), ErrLoadConfig)
		}
	}

	// FACEITSTATS_HISTORY_LIMIT -> history_limit. Keys stay flat.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "read environment"), ErrLoadConfig)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode config"), ErrLoadConfig)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.StructCtx(ctx, &cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "validate config"), ErrInvalidConfig)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = fallbackAPIKey()
	}
	return &cfg, nil
}

// RequireAPIKey returns ErrMissingAPIKey when no key was resolved.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func fallbackAPIKey() string {
	if key := os.Getenv("FACEIT_API_KEY"); key != "" {
		return key
	}
	data, err := os.ReadFile(filepath.Join(Dir(), "faceit_api_key"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
