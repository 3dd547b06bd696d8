package metrics

import (
	"database/sql"
	"time"
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited(method, path string) {
	RateLimitedTotal.WithLabelValues(method, path).Inc()
}

// RecordOperationDuration records the duration of a named database operation.
func RecordOperationDuration(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordNoteOperation records the outcome of a note operation.
func RecordNoteOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	NoteOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateNotesTotal updates the total count of notes in the database.
// This gauge is refreshed periodically by the stats refresher.
func UpdateNotesTotal(count int64) {
	NotesTotal.Set(float64(count))
}

// UpdateDBPoolStats copies connection pool statistics into the pool gauges.
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsOpen.Set(float64(stats.OpenConnections))
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
	DBConnectionsWaitCount.Set(float64(stats.WaitCount))
}

// RecordStatsRefresh records the outcome of a scheduled stats refresh.
func RecordStatsRefresh(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	StatsRefreshTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState records the state of a named circuit breaker.
// state follows gobreaker.State ordering.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
