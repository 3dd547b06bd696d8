// Package resilience provides reliability and fault tolerance patterns for the application.
//
// The package supports:
//   - A circuit breaker around the database pool (circuitbreaker.DB)
//   - Retry logic with exponential backoff and jitter for transient connection failures
//
// Usage Example:
//
//	guarded := circuitbreaker.NewDB(database)
//	repo := postgres.NewNoteRepo(guarded)
//
//	err := retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
//	    return database.PingContext(ctx)
//	})
package resilience
