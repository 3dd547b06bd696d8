// Package config loads the server configuration from an optional YAML file
// and the environment.
//
// Precedence, highest first: environment variables, the YAML file named by
// CONFIG_FILE, then Default(). Environment values that fail to parse or
// validate are ignored with a warning; the file is trusted input and any
// problem in it is returned as an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "notes-api/internal/pkg/config"
)

// Config is the complete server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Stats    StatsConfig    `yaml:"stats"`
	Version  string         `yaml:"version"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

// DatabaseConfig selects the backing store. URL is used by the Postgres
// entry point and SQLitePath by the SQLite one.
type DatabaseConfig struct {
	URL        string `yaml:"url"`
	SQLitePath string `yaml:"sqlite_path"`
}

// AuthConfig enables bearer authentication on write endpoints when
// JWTSecret is non-empty.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// StatsConfig drives the background stats refresher.
type StatsConfig struct {
	RefreshSchedule string        `yaml:"refresh_schedule"`
	RefreshTimeout  time.Duration `yaml:"refresh_timeout"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:              "0.0.0.0:8080",
			ReadHeaderTimeout: 10 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		Database: DatabaseConfig{
			SQLitePath: "notes.db",
		},
		Stats: StatsConfig{
			RefreshSchedule: "@every 1m",
			RefreshTimeout:  10 * time.Second,
		},
		Version: "dev",
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if err := pkgconfig.ValidateListenAddr(c.Server.Addr); err != nil {
		errs = append(errs, fmt.Errorf("server.addr: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Server.ReadHeaderTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server.read_header_timeout: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Server.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server.request_timeout: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout: %w", err))
	}
	if err := pkgconfig.ValidatePositiveInt64(c.Server.MaxBodyBytes); err != nil {
		errs = append(errs, fmt.Errorf("server.max_body_bytes: %w", err))
	}
	if err := pkgconfig.ValidateCronSchedule(c.Stats.RefreshSchedule); err != nil {
		errs = append(errs, fmt.Errorf("stats.refresh_schedule: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Stats.RefreshTimeout); err != nil {
		errs = append(errs, fmt.Errorf("stats.refresh_timeout: %w", err))
	}

	return errors.Join(errs...)
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string, logger *slog.Logger, metrics *pkgconfig.ConfigMetrics) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path comes from CONFIG_FILE, set by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg, logger, metrics)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	metrics.RecordLoadTimestamp()
	return &cfg, nil
}

// decodeYAML rejects unknown keys so that a misspelt setting is an error
// rather than a silently ignored line. An empty file leaves cfg unchanged.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overlays environment variables on cfg. Each rejected value keeps
// the file or default value, logs a warning and is counted in metrics.
func applyEnv(cfg *Config, logger *slog.Logger, metrics *pkgconfig.ConfigMetrics) {
	fallbackApplied := false
	record := func(field string, warnings []string) {
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field)
		for _, warning := range warnings {
			logger.Warn("configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	addr := pkgconfig.LoadEnvWithFallback("SERVER_ADDR", cfg.Server.Addr, pkgconfig.ValidateListenAddr)
	if addr.FallbackApplied {
		record("server_addr", addr.Warnings)
	}
	cfg.Server.Addr = addr.Value

	durations := []struct {
		env, field string
		dst        *time.Duration
		validate   func(time.Duration) error
	}{
		{"READ_HEADER_TIMEOUT", "read_header_timeout", &cfg.Server.ReadHeaderTimeout, pkgconfig.ValidatePositiveDuration},
		{"REQUEST_TIMEOUT", "request_timeout", &cfg.Server.RequestTimeout, func(d time.Duration) error {
			return pkgconfig.ValidateDuration(d, 100*time.Millisecond, 10*time.Minute)
		}},
		{"SHUTDOWN_TIMEOUT", "shutdown_timeout", &cfg.Server.ShutdownTimeout, func(d time.Duration) error {
			return pkgconfig.ValidateDuration(d, time.Second, 5*time.Minute)
		}},
		{"STATS_REFRESH_TIMEOUT", "stats_refresh_timeout", &cfg.Stats.RefreshTimeout, pkgconfig.ValidatePositiveDuration},
	}
	for _, d := range durations {
		result := pkgconfig.LoadEnvDuration(d.env, *d.dst, d.validate)
		if result.FallbackApplied {
			record(d.field, result.Warnings)
		}
		*d.dst = result.Value
	}

	body := pkgconfig.LoadEnvInt64("MAX_BODY_BYTES", cfg.Server.MaxBodyBytes, pkgconfig.ValidatePositiveInt64)
	if body.FallbackApplied {
		record("max_body_bytes", body.Warnings)
	}
	cfg.Server.MaxBodyBytes = body.Value

	schedule := pkgconfig.LoadEnvWithFallback("STATS_REFRESH_SCHEDULE", cfg.Stats.RefreshSchedule, pkgconfig.ValidateCronSchedule)
	if schedule.FallbackApplied {
		record("stats_refresh_schedule", schedule.Warnings)
	}
	cfg.Stats.RefreshSchedule = schedule.Value

	cfg.Database.URL = pkgconfig.LoadEnvString("DATABASE_URL", cfg.Database.URL)
	cfg.Database.SQLitePath = pkgconfig.LoadEnvString("SQLITE_PATH", cfg.Database.SQLitePath)
	cfg.Auth.JWTSecret = pkgconfig.LoadEnvString("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Version = pkgconfig.LoadEnvString("VERSION", cfg.Version)

	metrics.SetFallbackActive(fallbackApplied)
}
