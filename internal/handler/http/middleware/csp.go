package middleware

import (
	"net/http"
	"strings"

	"notes-api/pkg/config"
	"notes-api/pkg/security/csp"
)

// CSPConfig selects a Content-Security-Policy per path prefix.
type CSPConfig struct {
	Enabled    bool
	ReportOnly bool
	// Default applies when no entry in PathPolicies matches.
	Default csp.Policy
	// PathPolicies maps a path prefix to its policy; the longest match wins.
	PathPolicies map[string]csp.Policy
}

// LoadCSPConfig reads CSP_ENABLED (default true) and CSP_REPORT_ONLY
// (default false). JSON routes get csp.Strict and /swagger/ gets
// csp.SwaggerUI.
func LoadCSPConfig() CSPConfig {
	return CSPConfig{
		Enabled:    config.GetEnvBool("CSP_ENABLED", true),
		ReportOnly: config.GetEnvBool("CSP_REPORT_ONLY", false),
		Default:    csp.Strict(),
		PathPolicies: map[string]csp.Policy{
			"/swagger/": csp.SwaggerUI(),
		},
	}
}

type renderedPolicy struct {
	prefix string
	header string
	value  string
}

// CSP sets the configured policy header on every response. Header values
// are rendered once here, not per request.
func CSP(cfg CSPConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	render := func(prefix string, p csp.Policy) renderedPolicy {
		p = p.ReportOnly(cfg.ReportOnly)
		return renderedPolicy{prefix: prefix, header: p.HeaderName(), value: p.String()}
	}
	def := render("", cfg.Default)
	paths := make([]renderedPolicy, 0, len(cfg.PathPolicies))
	for prefix, p := range cfg.PathPolicies {
		paths = append(paths, render(prefix, p))
	}

	pick := func(path string) renderedPolicy {
		best := def
		for _, rp := range paths {
			if strings.HasPrefix(path, rp.prefix) && len(rp.prefix) > len(best.prefix) {
				best = rp
			}
		}
		return best
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rp := pick(r.URL.Path); rp.value != "" {
				w.Header().Set(rp.header, rp.value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
