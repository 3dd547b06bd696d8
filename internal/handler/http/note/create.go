package note

import (
	"log/slog"
	"net/http"

	"notes-api/internal/handler/http/respond"
	"notes-api/internal/observability/logging"
	noteUC "notes-api/internal/usecase/note"
)

type CreateHandler struct{ Svc *noteUC.Service }

// ServeHTTP creates a note
// @Summary      Create a note
// @Description  Inserts a note and returns the stored row.
// @Tags         notes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        note body CreateRequest true "Note to create"
// @Success      200 {object} Response
// @Failure      400 {object} respond.ErrorBody "Invalid JSON or validation error"
// @Failure      401 {object} respond.ErrorBody "Missing or invalid bearer token"
// @Failure      403 {object} respond.ErrorBody "Token lacks the writer role"
// @Failure      409 {object} respond.ErrorBody "Note already exists"
// @Failure      413 {object} respond.ErrorBody "Request body too large"
// @Failure      429 {object} respond.ErrorBody "Too many requests"
// @Failure      500 {object} respond.ErrorBody "Database error"
// @Router       /notes [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.Svc.Create(r.Context(), noteUC.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	logging.FromContext(r.Context()).Info("note created", slog.String("note_id", n.ID), actor(r))
	respond.JSON(w, http.StatusOK, Response{Status: "success", Data: toDTO(n)})
}
