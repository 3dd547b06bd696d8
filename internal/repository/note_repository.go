package repository

import (
	"context"

	"notes-api/internal/domain/entity"
)

type NoteRepository interface {
	// List returns a page of notes ordered by id.
	// Parameters:
	//   - offset: Number of rows to skip (calculated from page number)
	//   - limit: Maximum number of rows to return
	List(ctx context.Context, offset, limit int) ([]*entity.Note, error)
	// Count returns the total number of notes, used for pagination metadata.
	Count(ctx context.Context) (int64, error)
	// Get returns (nil, nil) if the note does not exist.
	Get(ctx context.Context, id string) (*entity.Note, error)
	// Create inserts the note. A unique conflict on id or title is reported as entity.ErrDuplicate.
	Create(ctx context.Context, note *entity.Note) error
	// Update overwrites mutable fields; entity.ErrNotFound if no row matched.
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id string) error
}
