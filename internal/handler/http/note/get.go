package note

import (
	"net/http"

	"notes-api/internal/handler/http/respond"
	noteUC "notes-api/internal/usecase/note"
)

type GetHandler struct{ Svc *noteUC.Service }

// ServeHTTP fetches a note
// @Summary      Get a note
// @Tags         notes
// @Produce      json
// @Param        id path string true "Note ID (UUID)"
// @Success      200 {object} Response
// @Failure      400 {object} respond.ErrorBody "Invalid note ID"
// @Failure      404 {object} respond.ErrorBody "Note not found"
// @Failure      500 {object} respond.ErrorBody "Database error"
// @Router       /notes/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, Response{Status: "success", Data: toDTO(n)})
}
