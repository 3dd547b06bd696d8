// Package http holds the note API's HTTP surface: probes, the metrics
// endpoint and the middleware chain shared by every route. Note handlers
// live in the note subpackage.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"notes-api/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Breaker exposes the state of the database circuit breaker.
type Breaker interface {
	State() gobreaker.State
}

// HealthHandler reports database connectivity, pool statistics and the
// circuit breaker state. It answers 503 when the database is unreachable.
type HealthHandler struct {
	DB      *sql.DB
	Breaker Breaker
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	healthy := true
	degraded := false

	if h.DB != nil {
		db := h.checkDatabase(ctx)
		checks["database"] = db
		switch db.Status {
		case "unhealthy":
			healthy = false
		case "degraded":
			degraded = true
		}
	} else {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		healthy = false
	}

	if h.Breaker != nil {
		state := h.Breaker.State()
		cs := CheckStatus{Status: "healthy", Details: map[string]any{"state": state.String()}}
		if state != gobreaker.StateClosed {
			cs.Status = "degraded"
			degraded = true
		}
		checks["circuit_breaker"] = cs
	}

	status, code := "healthy", http.StatusOK
	switch {
	case !healthy:
		status, code = "unhealthy", http.StatusServiceUnavailable
	case degraded:
		status = "degraded"
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
	}

	stats := h.DB.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler answers the readiness probe: the database must respond to a
// ping and the circuit breaker must not be open.
type ReadyHandler struct {
	DB      *sql.DB
	Breaker Breaker
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if h.Breaker != nil && h.Breaker.State() == gobreaker.StateOpen {
		http.Error(w, "database circuit open", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready: "+respond.SanitizeError(err), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Default().Warn("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler answers the liveness probe.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Default().Warn("live: failed to write response", slog.Any("error", err))
	}
}
