package middleware

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"notes-api/pkg/config"
)

var (
	defaultCORSMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	defaultCORSExposed = []string{"X-Request-ID", "X-Trace-Id", "Retry-After"}
)

// LoadCORSConfig reads CORS_ALLOWED_ORIGINS, CORS_ALLOWED_METHODS,
// CORS_ALLOWED_HEADERS and CORS_MAX_AGE. An empty origin list disables CORS.
func LoadCORSConfig() (CORSConfig, error) {
	cfg := CORSConfig{
		AllowedOrigins: config.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		AllowedMethods: slices.Clone(config.GetEnvStringList("CORS_ALLOWED_METHODS", defaultCORSMethods)),
		AllowedHeaders: config.GetEnvStringList("CORS_ALLOWED_HEADERS", defaultCORSHeaders),
		ExposedHeaders: defaultCORSExposed,
		MaxAge:         config.GetEnvInt("CORS_MAX_AGE", 86400),
	}
	for _, origin := range cfg.AllowedOrigins {
		if err := validateOrigin(origin); err != nil {
			return CORSConfig{}, err
		}
	}
	for i, m := range cfg.AllowedMethods {
		cfg.AllowedMethods[i] = strings.ToUpper(m)
	}
	return cfg, nil
}

// validateOrigin accepts "*" or a bare scheme://host[:port].
func validateOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
	}
	return nil
}
