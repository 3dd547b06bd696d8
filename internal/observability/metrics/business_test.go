package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("GET", "/notes", "200", 15*time.Millisecond, 0, 512)
	RecordHTTPRequest("GET", "/notes", "200", 5*time.Millisecond, 0, 0)

	got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/notes", "200"))
	assert.Equal(t, float64(2), got)
}

func TestRecordNoteOperation(t *testing.T) {
	NoteOperationsTotal.Reset()

	tests := []struct {
		name   string
		err    error
		result string
	}{
		{name: "success", err: nil, result: "success"},
		{name: "failure", err: errors.New("boom"), result: "failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(NoteOperationsTotal.WithLabelValues("create", tt.result))
			RecordNoteOperation("create", tt.err)
			after := testutil.ToFloat64(NoteOperationsTotal.WithLabelValues("create", tt.result))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestUpdateNotesTotal(t *testing.T) {
	UpdateNotesTotal(17)
	assert.Equal(t, float64(17), testutil.ToFloat64(NotesTotal))

	UpdateNotesTotal(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(NotesTotal))
}

func TestUpdateDBPoolStats(t *testing.T) {
	UpdateDBPoolStats(sql.DBStats{
		OpenConnections: 5,
		InUse:           2,
		Idle:            3,
		WaitCount:       9,
	})

	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionsOpen))
	assert.Equal(t, float64(2), testutil.ToFloat64(DBConnectionsActive))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionsIdle))
	assert.Equal(t, float64(9), testutil.ToFloat64(DBConnectionsWaitCount))
}

func TestRecordStatsRefresh(t *testing.T) {
	StatsRefreshTotal.Reset()

	RecordStatsRefresh(true)
	RecordStatsRefresh(false)
	RecordStatsRefresh(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(StatsRefreshTotal.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(StatsRefreshTotal.WithLabelValues("failure")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("database", 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))

	SetCircuitBreakerState("database", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))
}

func TestRecordOperationDuration(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordOperationDuration("list_notes", 3*time.Millisecond)
	})
}

func TestRecordRateLimited(t *testing.T) {
	RateLimitedTotal.Reset()
	RecordRateLimited("POST", "/notes")
	assert.Equal(t, float64(1), testutil.ToFloat64(RateLimitedTotal.WithLabelValues("POST", "/notes")))
}
