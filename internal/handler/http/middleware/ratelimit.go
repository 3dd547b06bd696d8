package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"notes-api/internal/handler/http/pathutil"
	"notes-api/internal/handler/http/respond"
	"notes-api/internal/observability/metrics"
	"notes-api/pkg/config"
)

// RateLimiterConfig configures the per-client token bucket.
type RateLimiterConfig struct {
	// RPS is the sustained request rate per client. Zero or less disables limiting.
	RPS   float64
	Burst int
	// IdleTTL is how long an idle client's bucket is kept.
	IdleTTL time.Duration
}

// DefaultRateLimiterConfig returns 5 req/s with a burst of 10.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{RPS: 5, Burst: 10, IdleTTL: 10 * time.Minute}
}

// LoadRateLimiterConfig reads WRITE_RATE_LIMIT_RPS and WRITE_RATE_LIMIT_BURST.
func LoadRateLimiterConfig() RateLimiterConfig {
	cfg := DefaultRateLimiterConfig()
	cfg.RPS = config.GetEnvFloat("WRITE_RATE_LIMIT_RPS", cfg.RPS)
	cfg.Burst = config.GetEnvInt("WRITE_RATE_LIMIT_BURST", cfg.Burst)
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	return cfg
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one golang.org/x/time/rate bucket per client IP.
type RateLimiter struct {
	cfg         RateLimiterConfig
	ipExtractor IPExtractor
	now         func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter creates a RateLimiter. A nil extractor uses RemoteAddr.
func NewRateLimiter(cfg RateLimiterConfig, ipExtractor IPExtractor) *RateLimiter {
	if ipExtractor == nil {
		ipExtractor = RemoteAddrExtractor{}
	}
	return &RateLimiter{
		cfg:         cfg,
		ipExtractor: ipExtractor,
		now:         time.Now,
		visitors:    make(map[string]*visitor),
	}
}

// Enabled reports whether the limiter rejects anything at all.
func (rl *RateLimiter) Enabled() bool {
	return rl.cfg.RPS > 0
}

// Middleware rejects clients over their budget with 429 and a Retry-After
// header. Requests whose client IP cannot be determined are let through.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if !rl.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := rl.ipExtractor.ExtractIP(r)
		if err != nil {
			slog.Warn("rate limiter: cannot determine client IP",
				slog.String("remote_addr", r.RemoteAddr),
				slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.cfg.Burst))
		if !rl.allow(ip) {
			retryAfter := int(math.Ceil(1 / rl.cfg.RPS))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			metrics.RecordRateLimited(r.Method, pathutil.NormalizePath(r.URL.Path))
			slog.Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))
			respond.Error(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// CleanupExpired drops buckets idle for longer than IdleTTL and returns
// how many were removed.
func (rl *RateLimiter) CleanupExpired() int {
	cutoff := rl.now().Add(-rl.cfg.IdleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	slog.Debug("rate limiter: cleanup completed",
		slog.Int("removed", removed),
		slog.Int("active_ips", len(rl.visitors)))
	return removed
}

// ActiveKeys returns the number of tracked clients.
func (rl *RateLimiter) ActiveKeys() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}
