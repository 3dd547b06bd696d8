package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"notes-api/internal/common/pagination"
	"notes-api/internal/domain/entity"
	"notes-api/internal/observability/metrics"
	"notes-api/internal/observability/tracing"
	"notes-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new note.
// A nil IsPublished stores false.
type CreateInput struct {
	Title       string
	Content     string
	IsPublished *bool
}

// UpdateInput represents the input parameters for updating an existing note.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID          string
	Title       *string
	Content     *string
	IsPublished *bool
}

// PaginatedResult is one page of notes plus pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Note
	Pagination pagination.Metadata
}

// Service provides note management use cases.
// Now and NewID default to time.Now and uuid.NewString.
type Service struct {
	Repo  repository.NoteRepository
	Now   func() time.Time
	NewID func() string
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// observe starts a span for op and returns a finisher that records the
// span status, operation duration and outcome.
func (s *Service) observe(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := tracing.StartSpan(ctx, "note."+op, attrs...)
	start := time.Now()
	return ctx, func(err error) {
		metrics.RecordOperationDuration(op+"_note", time.Since(start))
		metrics.RecordNoteOperation(op, err)
		tracing.RecordError(span, err)
		span.End()
	}
}

// ListPaginated returns the requested page ordered by id. The total count
// and the page are fetched concurrently.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (res *PaginatedResult, err error) {
	ctx, done := s.observe(ctx, "list",
		attribute.Int("pagination.page", params.Page),
		attribute.Int("pagination.limit", params.Limit))
	defer func() { done(err) }()

	var strategy pagination.OffsetStrategy
	q := strategy.CalculateQuery(params)

	var (
		total int64
		notes []*entity.Note
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Repo.Count(gctx)
		if err != nil {
			return fmt.Errorf("count notes: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		page, err := s.Repo.List(gctx, q.Offset, q.Limit)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		notes = page
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &PaginatedResult{
		Data:       notes,
		Pagination: strategy.BuildMetadata(params, total),
	}, nil
}

// Create validates the input, inserts a new note and reads it back by id.
// Returns a ValidationError if any input field is invalid and
// ErrDuplicateNote if the title is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (n *entity.Note, err error) {
	ctx, done := s.observe(ctx, "create")
	defer func() { done(err) }()

	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	now := s.now()
	note := &entity.Note{
		ID:        s.newID(),
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.IsPublished != nil {
		note.IsPublished = *in.IsPublished
	}

	if err := s.Repo.Create(ctx, note); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, ErrDuplicateNote
		}
		return nil, fmt.Errorf("create note: %w", err)
	}

	stored, err := s.Repo.Get(ctx, note.ID)
	if err != nil {
		return nil, fmt.Errorf("read back note: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("read back note %s: %w", note.ID, ErrNoteNotFound)
	}
	return stored, nil
}

// Get retrieves a single note by its ID.
// Returns ErrInvalidNoteID if the ID is not a UUID.
// Returns ErrNoteNotFound if the note does not exist.
func (s *Service) Get(ctx context.Context, id string) (n *entity.Note, err error) {
	ctx, done := s.observe(ctx, "get", attribute.String("note.id", id))
	defer func() { done(err) }()

	return s.get(ctx, id)
}

func (s *Service) get(ctx context.Context, id string) (*entity.Note, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	note, err := s.Repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Update modifies an existing note with the provided input.
// Only non-nil fields in the input will be updated; UpdatedAt is always refreshed.
func (s *Service) Update(ctx context.Context, in UpdateInput) (n *entity.Note, err error) {
	ctx, done := s.observe(ctx, "update", attribute.String("note.id", in.ID))
	defer func() { done(err) }()

	note, err := s.get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		note.Title = *in.Title
	}
	if in.Content != nil {
		if err := entity.ValidateContent(*in.Content); err != nil {
			return nil, err
		}
		note.Content = *in.Content
	}
	if in.IsPublished != nil {
		note.IsPublished = *in.IsPublished
	}
	note.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, note); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return nil, ErrNoteNotFound
		case errors.Is(err, entity.ErrDuplicate):
			return nil, ErrDuplicateNote
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

// Delete removes a note by its ID.
// Returns ErrInvalidNoteID if the ID is not a UUID and ErrNoteNotFound if
// nothing was deleted.
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, done := s.observe(ctx, "delete", attribute.String("note.id", id))
	defer func() { done(err) }()

	key, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, key); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// parseID accepts any textual UUID form and returns the canonical lowercase form.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidNoteID
	}
	return u.String(), nil
}
