package note

import (
	"log/slog"
	"net/http"

	"notes-api/internal/observability/logging"
	noteUC "notes-api/internal/usecase/note"
)

type DeleteHandler struct{ Svc *noteUC.Service }

// ServeHTTP deletes a note
// @Summary      Delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        id path string true "Note ID (UUID)"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "Invalid note ID"
// @Failure      401 {object} respond.ErrorBody "Missing or invalid bearer token"
// @Failure      403 {object} respond.ErrorBody "Token lacks the writer role"
// @Failure      404 {object} respond.ErrorBody "Note not found"
// @Failure      429 {object} respond.ErrorBody "Too many requests"
// @Failure      500 {object} respond.ErrorBody "Database error"
// @Router       /notes/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	logging.FromContext(r.Context()).Info("note deleted", slog.String("note_id", id), actor(r))
	w.WriteHeader(http.StatusNoContent)
}
