// Package respond writes JSON responses in the service's envelope format.
//
// Success bodies are handler-specific; every error body has the shape
// {"status":"error","message":"..."}.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON envelope for every error response.
type ErrorBody struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Note already exists"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes an error envelope carrying msg.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Status: "error", Message: msg})
}

// DatabaseError passes a storage failure through to the client as
// "Database error: <driver message>" with credentials masked. Only the
// innermost error is shown, so call-site prefixes stay in the logs.
func DatabaseError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	slog.Default().Error("database error",
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Error(w, code, "Database error: "+SanitizeError(rootCause(err)))
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
