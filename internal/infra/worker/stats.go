package worker

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sony/gobreaker"

	"notes-api/internal/observability/metrics"
)

// StatsJobName labels the stats refresher in logs and worker metrics.
const StatsJobName = "stats_refresh"

// NoteCounter is the part of the note repository the refresher reads.
type NoteCounter interface {
	Count(ctx context.Context) (int64, error)
}

// PoolStatter reports connection pool statistics; *sql.DB satisfies it.
type PoolStatter interface {
	Stats() sql.DBStats
}

// BreakerState reports a circuit breaker's state.
type BreakerState interface {
	State() gobreaker.State
}

// StatsRefresher keeps the slow-moving gauges current: notes_total, the
// db_connections_* pool gauges and circuit_breaker_state. Pool and Breaker
// are optional.
type StatsRefresher struct {
	Notes       NoteCounter
	Pool        PoolStatter
	Breaker     BreakerState
	BreakerName string
}

// Refresh updates every gauge it can. Pool and breaker gauges are set even
// when counting notes fails, since those are most useful during an outage.
func (r *StatsRefresher) Refresh(ctx context.Context) error {
	if r.Pool != nil {
		metrics.UpdateDBPoolStats(r.Pool.Stats())
	}
	if r.Breaker != nil {
		name := r.BreakerName
		if name == "" {
			name = "database"
		}
		// Reading State also moves an expired open breaker to half-open.
		metrics.SetCircuitBreakerState(name, int(r.Breaker.State()))
	}

	count, err := r.Notes.Count(ctx)
	if err != nil {
		metrics.RecordStatsRefresh(false)
		return fmt.Errorf("count notes: %w", err)
	}
	metrics.UpdateNotesTotal(count)
	metrics.RecordStatsRefresh(true)
	return nil
}
