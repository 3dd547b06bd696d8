package note

import (
	"log/slog"
	"net/http"

	"notes-api/internal/handler/http/respond"
	"notes-api/internal/observability/logging"
	noteUC "notes-api/internal/usecase/note"
)

type UpdateHandler struct{ Svc *noteUC.Service }

// ServeHTTP updates a note
// @Summary      Update a note
// @Description  Changes only the fields present in the body; updated_at is always refreshed.
// @Tags         notes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string        true "Note ID (UUID)"
// @Param        note body UpdateRequest true "Fields to change"
// @Success      200 {object} Response
// @Failure      400 {object} respond.ErrorBody "Invalid JSON, note ID or field"
// @Failure      401 {object} respond.ErrorBody "Missing or invalid bearer token"
// @Failure      403 {object} respond.ErrorBody "Token lacks the writer role"
// @Failure      404 {object} respond.ErrorBody "Note not found"
// @Failure      409 {object} respond.ErrorBody "Note already exists"
// @Failure      413 {object} respond.ErrorBody "Request body too large"
// @Failure      429 {object} respond.ErrorBody "Too many requests"
// @Failure      500 {object} respond.ErrorBody "Database error"
// @Router       /notes/{id} [patch]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.Svc.Update(r.Context(), noteUC.UpdateInput{
		ID:          r.PathValue("id"),
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	logging.FromContext(r.Context()).Info("note updated", slog.String("note_id", n.ID), actor(r))
	respond.JSON(w, http.StatusOK, Response{Status: "success", Data: toDTO(n)})
}
