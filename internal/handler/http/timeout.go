package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"notes-api/internal/handler/http/respond"
)

// Timeout bounds each request to d. When the deadline passes first the
// client gets a 504 error envelope and later writes from the handler are
// discarded. The handler's context is cancelled so database calls stop.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutResponseWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			panicCh := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicCh <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicCh:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				if !tw.wroteHeader {
					tw.flushHeader(http.StatusOK)
				}
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.wroteHeader {
					respond.Error(w, http.StatusGatewayTimeout, "request timeout")
				}
			}
		})
	}
}

// timeoutResponseWriter buffers headers per request so the handler
// goroutine never touches the real header map after a timeout.
type timeoutResponseWriter struct {
	w           http.ResponseWriter
	header      http.Header
	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func (tw *timeoutResponseWriter) Header() http.Header { return tw.header }

func (tw *timeoutResponseWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.flushHeader(code)
}

func (tw *timeoutResponseWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.flushHeader(http.StatusOK)
	}
	return tw.w.Write(b)
}

// flushHeader must be called with mu held.
func (tw *timeoutResponseWriter) flushHeader(code int) {
	dst := tw.w.Header()
	for k, vv := range tw.header {
		dst[k] = vv
	}
	tw.wroteHeader = true
	tw.w.WriteHeader(code)
}
