package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"notes-api/internal/domain/entity"
	"notes-api/internal/handler/http/auth"
	"notes-api/internal/handler/http/respond"
	noteUC "notes-api/internal/usecase/note"
)

// writeError maps use case and storage errors onto HTTP responses.
// Anything unrecognised is a database failure and is passed through.
func writeError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(w, http.StatusBadRequest, verr.Field+" "+verr.Message)
	case errors.Is(err, noteUC.ErrInvalidNoteID):
		respond.Error(w, http.StatusBadRequest, "Invalid note ID")
	case errors.Is(err, noteUC.ErrNoteNotFound):
		respond.Error(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, noteUC.ErrDuplicateNote):
		respond.Error(w, http.StatusConflict, "Note already exists")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		w.Header().Set("Retry-After", "30")
		respond.DatabaseError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		respond.DatabaseError(w, http.StatusGatewayTimeout, err)
	default:
		respond.DatabaseError(w, http.StatusInternalServerError, err)
	}
}

// decodeJSON reads a single JSON document from the request body and rejects
// fields dst does not declare. It writes the error response itself and
// reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("body must contain a single JSON object")
	}
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		respond.Error(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit))
	case errors.Is(err, io.EOF):
		respond.Error(w, http.StatusBadRequest, "Request body is empty")
	default:
		respond.Error(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
	}
	return false
}

// actor names the authenticated subject for audit log lines.
func actor(r *http.Request) slog.Attr {
	if user, ok := auth.UserFromContext(r.Context()); ok {
		return slog.String("actor", user)
	}
	return slog.String("actor", "anonymous")
}
