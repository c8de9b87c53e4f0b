// Package config loads faceitstats settings from defaults, an optional YAML
// file and FACEITSTATS_ environment variables, in that order of precedence.
package config

import (
	"context"
	"os"
	"path/filepath"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// APIKey is the FACEIT Data API key.
	APIKey string `koanf:"api_key"`

	// BaseURL of the FACEIT Data API.
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// TimeoutSeconds bounds each upstream HTTP request.
	TimeoutSeconds int `koanf:"timeout_seconds" validate:"min=1,max=300"`

	// DBPath is the SQLite payload cache location.
	DBPath string `koanf:"db_path" validate:"required"`

	// CacheEnabled turns the match payload cache on.
	CacheEnabled bool `koanf:"cache_enabled"`

	// Game is the FACEIT game id used for history and lifetime stats.
	Game string `koanf:"game" validate:"required"`

	// HistoryLimit caps the match history shown on a player profile.
	HistoryLimit int `koanf:"history_limit" validate:"min=1,max=100"`

	// AnthropicModel is the model used by the analyze command.
	AnthropicModel string `koanf:"anthropic_model" validate:"required"`
}

// New returns a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "warn",
		BaseURL:        "https://open.faceit.com/data/v4",
		TimeoutSeconds: 30,
		DBPath:         filepath.Join(Dir(), "cache.db"),
		CacheEnabled:   true,
		Game:           "cs2",
		HistoryLimit:   15,
		AnthropicModel: "claude-haiku-4-5-20251001",
	}
}

// Dir is the per-user settings directory, ~/.faceitstats.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".faceitstats")
}
