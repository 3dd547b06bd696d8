package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics tracks background job execution, labelled by job name.
//
// Metrics:
//   - worker_job_runs_total: runs by job and status (success/failure/skipped)
//   - worker_job_duration_seconds: run duration by job
//   - worker_job_last_success_timestamp: Unix time of the last successful run by job
type WorkerMetrics struct {
	JobRunsTotal            *prometheus.CounterVec
	JobDurationSeconds      *prometheus.HistogramVec
	JobLastSuccessTimestamp *prometheus.GaugeVec
}

// NewWorkerMetrics creates the job metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewWorkerMetrics(reg prometheus.Registerer) *WorkerMetrics {
	factory := promauto.With(reg)
	return &WorkerMetrics{
		JobRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_job_runs_total",
			Help: "Total number of background job runs by job and status",
		}, []string{"job", "status"}),

		JobDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of background job runs in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30},
		}, []string{"job"}),

		JobLastSuccessTimestamp: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "worker_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful background job run",
		}, []string{"job"}),
	}
}

// RecordJobRun increments the run counter for job.
func (m *WorkerMetrics) RecordJobRun(job, status string) {
	m.JobRunsTotal.WithLabelValues(job, status).Inc()
}

// RecordJobDuration observes one run of job.
func (m *WorkerMetrics) RecordJobDuration(job string, seconds float64) {
	m.JobDurationSeconds.WithLabelValues(job).Observe(seconds)
}

// RecordLastSuccess stamps the current time as job's last success.
func (m *WorkerMetrics) RecordLastSuccess(job string) {
	m.JobLastSuccessTimestamp.WithLabelValues(job).SetToCurrentTime()
}
