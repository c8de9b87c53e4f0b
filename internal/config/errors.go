package config

import "github.com/cockroachdb/errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
	ErrMissingAPIKey = errors.New("FACEIT API key not found: set FACEITSTATS_API_KEY or FACEIT_API_KEY, or create ~/.faceitstats/faceit_api_key")
)
