// Package metrics provides Prometheus metrics registry and recording utilities.
//
// All collectors are registered with the Prometheus default registry through
// promauto and exposed via the /metrics endpoint. Callers should prefer the
// Record*/Update* helpers over touching the collectors directly.
//
// Example usage:
//
//	import "notes-api/internal/observability/metrics"
//
//	func createNote(ctx context.Context) error {
//	    start := time.Now()
//	    err := repo.Create(ctx, note)
//	    metrics.RecordOperationDuration("create_note", time.Since(start))
//	    metrics.RecordNoteOperation("create", err)
//	    return err
//	}
package metrics
