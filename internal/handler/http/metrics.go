package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notes-api/internal/handler/http/pathutil"
	"notes-api/internal/handler/http/responsewriter"
	"notes-api/internal/observability/metrics"
)

// MetricsMiddleware records request count, latency, in-flight gauge and
// body sizes, labelled by the route template rather than the raw path.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(rw.StatusCode()),
			time.Since(start), int(r.ContentLength), rw.BytesWritten())
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
