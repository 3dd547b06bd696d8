// Package observability groups the service's logging, metrics and tracing support.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP, database and note operations
//   - tracing: OpenTelemetry tracer, HTTP middleware and span helpers
//
// Example usage:
//
//	import (
//	    "notes-api/internal/observability/logging"
//	    "notes-api/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.UpdateNotesTotal(42)
//	}
package observability
