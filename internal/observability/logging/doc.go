// Package logging provides structured logging utilities with context propagation.
//
// Request handlers should log through FromContext so entries carry the
// request_id attached by the request ID middleware.
//
// Example usage:
//
//	import "notes-api/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    slog.SetDefault(logger)
//	}
//
//	func handleRequest(ctx context.Context) {
//	    logging.FromContext(ctx).Info("processing request")
//	}
package logging
