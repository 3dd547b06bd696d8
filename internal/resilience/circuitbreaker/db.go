package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"

	"notes-api/internal/resilience/retry"
)

// DB wraps a connection pool with circuit breaker protection.
// It satisfies repository.DBTX so adapters can use it in place of *sql.DB.
type DB struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig returns configuration optimized for database circuit breakers.
// Only connection-level failures count; constraint violations and other
// query errors are the caller's problem, not the database's health.
func DBConfig() Config {
	cfg := DefaultConfig("database")
	cfg.Interval = time.Minute
	cfg.Timeout = 30 * time.Second
	cfg.FailureThreshold = 1.0
	cfg.IsSuccessful = func(err error) bool {
		return err == nil || !retry.IsRetryable(err)
	}
	return cfg
}

// NewDB creates a circuit breaker protected pool using DBConfig.
func NewDB(db *sql.DB) *DB {
	return NewDBWithConfig(db, DBConfig())
}

// NewDBWithConfig creates a circuit breaker protected pool with custom configuration.
func NewDBWithConfig(db *sql.DB, cfg Config) *DB {
	return &DB{
		cb: New(cfg),
		db: db,
	}
}

// QueryContext executes a query with circuit breaker protection.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := d.cb.Execute(func() (interface{}, error) {
		return d.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := d.cb.Execute(func() (interface{}, error) {
		return d.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext is passed straight through: sql.Row defers its error
// until Scan, so the breaker cannot observe it.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (d *DB) State() gobreaker.State {
	return d.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (d *DB) IsOpen() bool {
	return d.cb.IsOpen()
}

// Unwrap returns the underlying pool, for health checks and shutdown.
func (d *DB) Unwrap() *sql.DB {
	return d.db
}
