// Package entity defines the core domain entities and validation logic for the application.
// It contains the Note record along with its validation rules and domain-specific errors.
package entity

import "time"

// Note represents a single note record.
// ID is a UUID v4 rendered as text; timestamps are stored in UTC.
type Note struct {
	ID          string
	Title       string
	Content     string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
