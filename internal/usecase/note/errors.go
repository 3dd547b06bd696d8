// Package note provides use cases for managing notes.
// It validates input, assigns identifiers and timestamps, and maps
// repository outcomes onto the sentinel errors below.
package note

import "errors"

// Sentinel errors for note use case operations.
var (
	// ErrNoteNotFound indicates that the requested note was not found.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidNoteID indicates that the provided note ID is not a UUID.
	ErrInvalidNoteID = errors.New("invalid note ID")

	// ErrDuplicateNote indicates that a note with the same title already exists.
	ErrDuplicateNote = errors.New("note already exists")
)
