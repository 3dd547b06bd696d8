// Package db opens the connection pool and applies the schema for both
// supported backends.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"             // registers "sqlite"

	"notes-api/internal/resilience/retry"
	envconfig "notes-api/pkg/config"
)

// Dialect identifies the SQL backend.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// driverName maps a dialect to its database/sql driver.
func (d Dialect) driverName() string {
	if d == SQLite {
		return "sqlite"
	}
	return "pgx"
}

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
		PingTimeout:     5 * time.Second,
	}
}

// ConnectionConfigFromEnv reads DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS,
// DB_CONN_MAX_LIFETIME and DB_CONN_MAX_IDLE_TIME. Non-positive values keep
// the default.
func ConnectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()

	if v := envconfig.GetEnvInt("DB_MAX_OPEN_CONNS", 0); v > 0 {
		cfg.MaxOpenConns = v
	}
	if v := envconfig.GetEnvInt("DB_MAX_IDLE_CONNS", 0); v > 0 {
		cfg.MaxIdleConns = v
	}
	if v := envconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", 0); v > 0 {
		cfg.ConnMaxLifetime = v
	}
	if v := envconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 0); v > 0 {
		cfg.ConnMaxIdleTime = v
	}
	if cfg.MaxIdleConns > cfg.MaxOpenConns {
		cfg.MaxIdleConns = cfg.MaxOpenConns
	}
	return cfg
}

// OpenPostgres opens a pgx-backed pool for dsn and waits for it to answer a ping.
func OpenPostgres(ctx context.Context, dsn string, cfg ConnectionConfig) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open postgres: DATABASE_URL not set")
	}
	return open(ctx, Postgres, dsn, cfg)
}

// OpenSQLite opens the database file at path, creating it if needed.
// The in-memory database is pinned to a single connection so every
// request sees the same schema.
func OpenSQLite(ctx context.Context, path string, cfg ConnectionConfig) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open sqlite: SQLITE_PATH not set")
	}
	if path == ":memory:" {
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
		cfg.ConnMaxLifetime = 0
		cfg.ConnMaxIdleTime = 0
	}
	return open(ctx, SQLite, SQLiteDSN(path), cfg)
}

// SQLiteDSN builds a modernc.org/sqlite DSN with a busy timeout, WAL
// journaling and foreign keys enabled.
func SQLiteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	if path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	return "file:" + path + "?" + q.Encode()
}

func open(ctx context.Context, dialect Dialect, dsn string, cfg ConnectionConfig) (*sql.DB, error) {
	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("dialect", string(dialect)),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	if err := Ping(ctx, db, cfg.PingTimeout); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	slog.Info("database connection established successfully",
		slog.String("dialect", string(dialect)))
	return db, nil
}

// Pinger is the subset of *sql.DB used by Ping.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Ping retries db.PingContext with startup backoff until it succeeds, a
// non-connection error is returned, or ctx is done.
func Ping(ctx context.Context, db Pinger, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultConnectionConfig().PingTimeout
	}
	return retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return db.PingContext(pingCtx)
	})
}
