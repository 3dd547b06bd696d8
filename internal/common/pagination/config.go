// Package pagination provides offset-based pagination for list endpoints.
package pagination

import envconfig "notes-api/pkg/config"

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page (typically 10)
	MaxLimit     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//
// Non-positive values fall back to DefaultConfig(), and a default limit
// above the max is capped.
func LoadFromEnv() Config {
	def := DefaultConfig()
	cfg := Config{
		DefaultPage:  envconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE", def.DefaultPage),
		DefaultLimit: envconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     envconfig.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
	if cfg.DefaultPage < 1 {
		cfg.DefaultPage = def.DefaultPage
	}
	if cfg.MaxLimit < 1 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.DefaultLimit < 1 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	if cfg.DefaultLimit > cfg.MaxLimit {
		cfg.DefaultLimit = cfg.MaxLimit
	}
	return cfg
}
