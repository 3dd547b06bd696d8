// Package app wires the notes API together: storage, use cases, HTTP routes,
// middleware and background jobs. Both entry points share it and differ
// only in the database dialect.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"notes-api/internal/common/pagination"
	"notes-api/internal/config"
	hhttp "notes-api/internal/handler/http"
	"notes-api/internal/handler/http/auth"
	"notes-api/internal/handler/http/middleware"
	"notes-api/internal/handler/http/note"
	"notes-api/internal/handler/http/requestid"
	pgRepo "notes-api/internal/infra/adapter/persistence/postgres"
	sqliteRepo "notes-api/internal/infra/adapter/persistence/sqlite"
	"notes-api/internal/infra/db"
	"notes-api/internal/infra/worker"
	"notes-api/internal/observability/tracing"
	"notes-api/internal/repository"
	"notes-api/internal/resilience/circuitbreaker"
	noteUC "notes-api/internal/usecase/note"

	_ "notes-api/docs" // swagger docs
)

// rateLimitCleanupSchedule sweeps idle rate limiter buckets.
const rateLimitCleanupSchedule = "@every 5m"

// workerMetrics is registered once per process; tests build several Servers.
var workerMetrics = sync.OnceValue(func() *worker.WorkerMetrics {
	return worker.NewWorkerMetrics(prometheus.DefaultRegisterer)
})

// Server is a fully wired API instance.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sql.DB
	breaker *circuitbreaker.DB
	repo    repository.NoteRepository

	handler     http.Handler
	rateLimiter *middleware.RateLimiter
	scheduler   *worker.Scheduler
	stats       *worker.StatsRefresher
}

// OpenDatabase opens the pool for dialect using cfg.Database and the DB_*
// pool settings, retrying the first ping with backoff.
func OpenDatabase(ctx context.Context, dialect db.Dialect, cfg *config.Config) (*sql.DB, error) {
	poolCfg := db.ConnectionConfigFromEnv()
	switch dialect {
	case db.Postgres:
		return db.OpenPostgres(ctx, cfg.Database.URL, poolCfg)
	case db.SQLite:
		return db.OpenSQLite(ctx, cfg.Database.SQLitePath, poolCfg)
	default:
		return nil, fmt.Errorf("unknown dialect %q", dialect)
	}
}

// NewRepository returns the note repository for dialect on top of conn.
func NewRepository(dialect db.Dialect, conn repository.DBTX) (repository.NoteRepository, error) {
	switch dialect {
	case db.Postgres:
		return pgRepo.NewNoteRepo(conn), nil
	case db.SQLite:
		return sqliteRepo.NewNoteRepo(conn), nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", dialect)
	}
}

// New migrates the schema on database and builds the HTTP handler and
// background jobs. The caller keeps ownership of database.
func New(ctx context.Context, database *sql.DB, dialect db.Dialect, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if err := db.MigrateUp(ctx, database, dialect); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	breaker := circuitbreaker.NewDB(database)
	repo, err := NewRepository(dialect, breaker)
	if err != nil {
		return nil, err
	}

	secret := []byte(cfg.Auth.JWTSecret)
	if len(secret) > 0 {
		if err := auth.ValidateSecret(secret); err != nil {
			return nil, err
		}
		logger.Info("bearer authentication enabled for write endpoints")
	} else {
		logger.Warn("JWT_SECRET not set: write endpoints are unauthenticated")
	}

	corsCfg, err := middleware.LoadCORSConfig()
	if err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}
	corsCfg.Logger = logger
	if corsCfg.Enabled() {
		logger.Info("CORS enabled",
			slog.Any("allowed_origins", corsCfg.AllowedOrigins),
			slog.Any("allowed_methods", corsCfg.AllowedMethods),
			slog.Int("max_age", corsCfg.MaxAge))
	}

	cspCfg := middleware.LoadCSPConfig()
	if cspCfg.Enabled {
		logger.Info("CSP enabled", slog.Bool("report_only", cspCfg.ReportOnly))
	} else {
		logger.Warn("CSP is disabled")
	}

	proxyCfg, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		return nil, fmt.Errorf("trusted proxy config: %w", err)
	}
	rlCfg := middleware.LoadRateLimiterConfig()
	rateLimiter := middleware.NewRateLimiter(rlCfg, middleware.NewIPExtractor(proxyCfg))
	if rateLimiter.Enabled() {
		logger.Info("write rate limiting enabled",
			slog.Float64("rps", rlCfg.RPS),
			slog.Int("burst", rlCfg.Burst),
			slog.Int("trusted_proxies", len(proxyCfg.AllowedCIDRs)))
	} else {
		logger.Warn("write rate limiting is DISABLED")
	}

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		db:          database,
		breaker:     breaker,
		repo:        repo,
		rateLimiter: rateLimiter,
		scheduler:   worker.NewScheduler(logger, workerMetrics(), cfg.Stats.RefreshTimeout),
		stats: &worker.StatsRefresher{
			Notes:   repo,
			Pool:    database,
			Breaker: breaker,
		},
	}

	svc := &noteUC.Service{Repo: repo}
	guard := func(h http.Handler) http.Handler {
		return hhttp.Chain(h, rateLimiter.Middleware, auth.RequireWriter(secret))
	}
	s.handler = s.applyMiddleware(s.routes(svc, guard), corsCfg, cspCfg)

	if err := s.scheduler.Add(worker.StatsJobName, cfg.Stats.RefreshSchedule, s.stats.Refresh); err != nil {
		return nil, fmt.Errorf("schedule stats refresh: %w", err)
	}
	if rateLimiter.Enabled() {
		if err := s.scheduler.Add("ratelimit_cleanup", rateLimitCleanupSchedule, s.cleanupRateLimiter); err != nil {
			return nil, fmt.Errorf("schedule rate limit cleanup: %w", err)
		}
	}
	return s, nil
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// routes registers every endpoint. Probes, metrics and docs are public;
// note writes pass through guard.
func (s *Server) routes(svc *noteUC.Service, guard func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET    /ping", hhttp.PingHandler{})
	mux.Handle("GET    /health", &hhttp.HealthHandler{DB: s.db, Breaker: s.breaker, Version: s.cfg.Version})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: s.db, Breaker: s.breaker})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())
	mux.Handle("GET    /swagger/", httpSwagger.WrapHandler)

	note.Register(mux, svc, pagination.LoadFromEnv(), guard)
	return mux
}

// applyMiddleware wraps the mux. Order, outermost first:
// Recovery, Request ID, Tracing, Logging, Metrics, CORS, CSP, Timeout, Body Limit.
func (s *Server) applyMiddleware(h http.Handler, corsCfg middleware.CORSConfig, cspCfg middleware.CSPConfig) http.Handler {
	return hhttp.Chain(h,
		hhttp.Recover(s.logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(s.logger),
		hhttp.MetricsMiddleware,
		middleware.CORS(corsCfg),
		middleware.CSP(cspCfg),
		hhttp.Timeout(s.cfg.Server.RequestTimeout),
		hhttp.LimitRequestBody(s.cfg.Server.MaxBodyBytes),
	)
}

func (s *Server) cleanupRateLimiter(context.Context) error {
	removed := s.rateLimiter.CleanupExpired()
	s.logger.Debug("rate limiter cleanup",
		slog.Int("removed", removed),
		slog.Int("active", s.rateLimiter.ActiveKeys()))
	return nil
}
