// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware starts a server span per request and echoes the trace
// id in the X-Trace-Id response header. Services open child spans with
// StartSpan. No exporter is configured by default; spans still carry real
// trace ids so logs and responses can be correlated.
//
// Example usage:
//
//	import "notes-api/internal/observability/tracing"
//
//	func main() {
//	    tp := tracing.NewProvider("notes-api", version)
//	    defer func() { _ = tp.Shutdown(context.Background()) }()
//	}
//
//	func createNote(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "note.Create")
//	    defer span.End()
//	}
package tracing
