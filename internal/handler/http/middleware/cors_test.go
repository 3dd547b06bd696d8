package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsHandler(cfg CORSConfig) (http.Handler, *bool) {
	called := false
	return CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})), &called
}

var testCORS = CORSConfig{
	AllowedOrigins: []string{"https://app.example.com"},
	AllowedMethods: []string{"GET", "POST"},
	AllowedHeaders: []string{"Content-Type"},
	ExposedHeaders: []string{"X-Request-ID"},
	MaxAge:         600,
}

func TestCORS_NoOrigin(t *testing.T) {
	h, called := corsHandler(testCORS)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.True(t, *called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	h, called := corsHandler(testCORS)
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, *called)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Request-ID", rr.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	h, called := corsHandler(testCORS)
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, *called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	h, called := corsHandler(testCORS)
	req := httptest.NewRequest(http.MethodOptions, "/notes", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "GET, POST", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rr.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_Wildcard(t *testing.T) {
	assert.True(t, CORSConfig{AllowedOrigins: []string{"*"}}.IsAllowed("http://anything:3000"))
	assert.False(t, CORSConfig{}.Enabled())
}

func TestLoadCORSConfig(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://notes.example.com")
	t.Setenv("CORS_ALLOWED_METHODS", "get,post")

	cfg, err := LoadCORSConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://notes.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST"}, cfg.AllowedMethods)
	assert.Equal(t, 86400, cfg.MaxAge)
	assert.True(t, cfg.Enabled())
}

func TestLoadCORSConfig_InvalidOrigin(t *testing.T) {
	for _, bad := range []string{"ftp://files.example.com", "https://example.com/app", "localhost"} {
		t.Run(bad, func(t *testing.T) {
			t.Setenv("CORS_ALLOWED_ORIGINS", bad)
			_, err := LoadCORSConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadCORSConfig_DefaultsUntouched(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg, err := LoadCORSConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())
	assert.Equal(t, defaultCORSMethods, cfg.AllowedMethods)
}
