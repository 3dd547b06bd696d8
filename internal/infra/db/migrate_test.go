package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUp_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS notes \(\s+id\s+VARCHAR\(36\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_notes_created_at").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, MigrateUp(context.Background(), db, Postgres))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_SQLite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS notes \(\s+id\s+TEXT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_notes_created_at").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, MigrateUp(context.Background(), db, SQLite))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_TableError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS notes").
		WillReturnError(sql.ErrConnDone)

	err = MigrateUp(context.Background(), db, Postgres)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrConnDone))
	assert.Contains(t, err.Error(), "step 1")
}

func TestMigrateUp_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Error(t, MigrateUp(context.Background(), db, Dialect("mysql")))
}
