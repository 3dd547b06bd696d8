// Package worker runs the API's periodic background jobs on a cron schedule.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	pkgconfig "notes-api/internal/pkg/config"
)

// Job is one unit of background work. It must return once ctx is done.
type Job func(ctx context.Context) error

// Scheduler runs named jobs on cron schedules. A job whose previous run is
// still in progress is skipped rather than stacked, and a panicking job is
// logged without stopping the scheduler.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	metrics *WorkerMetrics
	timeout time.Duration

	// ctx is cancelled by Stop and parents every run.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler whose job runs are bounded by timeout.
// Schedules are interpreted in UTC.
func NewScheduler(logger *slog.Logger, metrics *WorkerMetrics, timeout time.Duration) *Scheduler {
	cl := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithParser(pkgconfig.CronParser),
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		metrics: metrics,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Add registers job under name. The schedule uses pkgconfig.CronParser syntax.
func (s *Scheduler) Add(name, schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() { _ = s.RunNow(name, job) })
	if err != nil {
		return err
	}
	s.logger.Info("background job scheduled",
		slog.String("job", name),
		slog.String("schedule", schedule))
	return nil
}

// RunNow runs job once in the caller's goroutine with the scheduler's
// timeout and records the outcome.
func (s *Scheduler) RunNow(name string, job Job) error {
	if err := s.ctx.Err(); err != nil {
		s.metrics.RecordJobRun(name, "skipped")
		return err
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := job(ctx)
	elapsed := time.Since(start)
	s.metrics.RecordJobDuration(name, elapsed.Seconds())

	if err != nil {
		s.metrics.RecordJobRun(name, "failure")
		s.logger.Error("background job failed",
			slog.String("job", name),
			slog.Duration("duration", elapsed),
			slog.Any("error", err))
		return err
	}

	s.metrics.RecordJobRun(name, "success")
	s.metrics.RecordLastSuccess(name)
	s.logger.Debug("background job completed",
		slog.String("job", name),
		slog.Duration("duration", elapsed))
	return nil
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels in-flight runs and waits for them to return or for ctx to
// be done, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts slog to cron.Logger. cron's per-tick chatter goes to
// debug.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
