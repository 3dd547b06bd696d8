// Package repository declares the persistence ports used by the use case layer.
package repository

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB the persistence adapters need.
// Both *sql.DB and the circuit breaker wrapper satisfy it.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
