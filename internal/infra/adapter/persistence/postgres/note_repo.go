// Package postgres implements the repository ports on top of PostgreSQL via pgx's database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"notes-api/internal/domain/entity"
	"notes-api/internal/repository"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type NoteRepo struct{ db repository.DBTX }

func NewNoteRepo(db repository.DBTX) repository.NoteRepository {
	return &NoteRepo{db: db}
}

func (repo *NoteRepo) List(ctx context.Context, offset, limit int) ([]*entity.Note, error) {
	const query = `
SELECT id, title, content, is_published, created_at, updated_at
FROM notes
ORDER BY id
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notes := make([]*entity.Note, 0, limit)
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content,
			&n.IsPublished, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return notes, nil
}

func (repo *NoteRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM notes`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}

func (repo *NoteRepo) Get(ctx context.Context, id string) (*entity.Note, error) {
	const query = `
SELECT id, title, content, is_published, created_at, updated_at
FROM notes
WHERE id = $1
LIMIT 1`
	var n entity.Note
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Content, &n.IsPublished, &n.CreatedAt, &n.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &n, nil
}

func (repo *NoteRepo) Create(ctx context.Context, note *entity.Note) error {
	const query = `
INSERT INTO notes (id, title, content, is_published, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := repo.db.ExecContext(ctx, query,
		note.ID, note.Title, note.Content,
		note.IsPublished, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Create: %w: %v", entity.ErrDuplicate, err)
		}
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

func (repo *NoteRepo) Update(ctx context.Context, note *entity.Note) error {
	const query = `
UPDATE notes SET
    title        = $1,
    content      = $2,
    is_published = $3,
    updated_at   = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		note.Title, note.Content, note.IsPublished, note.UpdatedAt, note.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Update: %w: %v", entity.ErrDuplicate, err)
		}
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *NoteRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM notes WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
