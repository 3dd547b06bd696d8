package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"notes-api/internal/config"
	"notes-api/internal/handler/http/respond"
	"notes-api/internal/infra/db"
	"notes-api/internal/infra/worker"
	"notes-api/internal/observability/logging"
	"notes-api/internal/observability/tracing"
	pkgconfig "notes-api/internal/pkg/config"
)

const serviceName = "notes-api"

// Run serves HTTP on cfg.Server.Addr and runs the background jobs until ctx
// is cancelled, then shuts both down within cfg.Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// Seed the gauges before the first scheduled tick.
	_ = s.scheduler.RunNow(worker.StatsJobName, s.stats.Refresh)
	s.scheduler.Start()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", s.cfg.Version))
		serveErr <- srv.Serve(ln)
	}()

	var runErr error
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case <-ctx.Done():
		s.logger.Info("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown failed", slog.Any("error", err))
		runErr = errors.Join(runErr, err)
	}
	if err := s.scheduler.Stop(shutdownCtx); err != nil {
		s.logger.Error("background jobs did not stop in time", slog.Any("error", err))
	}
	s.logger.Info("server stopped")
	return runErr
}

// Main is the body of both API entry points. It returns the process exit code.
func Main(dialect db.Dialect) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", slog.Any("error", err))
		return 1
	}

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"), logger, pkgconfig.NewConfigMetrics("notes_api"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		return 1
	}

	tp := tracing.NewProvider(serviceName, cfg.Version)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := OpenDatabase(ctx, dialect, cfg)
	if err != nil {
		logger.Error("failed to open database",
			slog.String("dialect", string(dialect)),
			slog.String("error", respond.SanitizeError(err)))
		return 1
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	server, err := New(ctx, database, dialect, cfg, logger)
	if err != nil {
		logger.Error("failed to initialise server", slog.Any("error", err))
		return 1
	}

	if err := server.Run(ctx); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		return 1
	}
	return 0
}
