package pagination

import (
	"log/slog"
	"time"
)

// LogResponse logs a paginated response with duration and status.
func LogResponse(logger *slog.Logger, params Params, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("paginated response",
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Int("returned_count", returnedCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Int("status", statusCode))
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, params Params, err error, errorType string) {
	logger.Error("pagination error",
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.String("error", err.Error()),
		slog.String("error_type", errorType))
}
