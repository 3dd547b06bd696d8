package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var authRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_requests_total",
		Help: "Bearer token checks on write endpoints by result",
	},
	[]string{"result"}, // success | unauthorized | forbidden
)

// RecordAuthRequest records the outcome of a token check.
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}
