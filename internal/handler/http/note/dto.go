// Package note provides the HTTP handlers for the /notes resource.
package note

import (
	"time"

	"notes-api/internal/common/pagination"
	"notes-api/internal/domain/entity"
)

// DTO is the JSON representation of a note.
type DTO struct {
	ID          string    `json:"id" example:"6f1c2b1e-8d5a-4c1e-9f0a-3b2d4e5f6a7b"`
	Title       string    `json:"title" example:"Groceries"`
	Content     string    `json:"content" example:"milk, eggs, bread"`
	IsPublished bool      `json:"is_published" example:"false"`
	CreatedAt   time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-10-26T12:00:00Z"`
}

func toDTO(n *entity.Note) DTO {
	return DTO{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		IsPublished: n.IsPublished,
		CreatedAt:   n.CreatedAt.UTC(),
		UpdatedAt:   n.UpdatedAt.UTC(),
	}
}

// CreateRequest is the body of POST /notes.
type CreateRequest struct {
	Title       string `json:"title" example:"Groceries"`
	Content     string `json:"content" example:"milk, eggs, bread"`
	IsPublished *bool  `json:"is_published,omitempty" example:"false"`
}

// UpdateRequest is the body of PATCH /notes/{id}. Omitted fields are left unchanged.
type UpdateRequest struct {
	Title       *string `json:"title,omitempty" example:"Groceries (weekend)"`
	Content     *string `json:"content,omitempty" example:"milk, eggs, bread, coffee"`
	IsPublished *bool   `json:"is_published,omitempty" example:"true"`
}

// ListResponse is the body of GET /notes.
type ListResponse struct {
	Status     string              `json:"status" example:"ok"`
	Count      int                 `json:"count" example:"1"`
	Notes      []DTO               `json:"notes"`
	Pagination pagination.Metadata `json:"pagination"`
}

// Response wraps a single note.
type Response struct {
	Status string `json:"status" example:"success"`
	Data   DTO    `json:"data"`
}
