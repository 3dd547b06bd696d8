package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/internal/handler/http/requestid"
	"notes-api/internal/observability/logging"
)

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var ctxLogger *slog.Logger
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logging.FromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}), requestid.Middleware, Logging(logger))

	req := httptest.NewRequest(http.MethodPost, "/notes?x=1", nil)
	req.Header.Set(requestid.RequestIDHeader, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, ctxLogger)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/notes", entry["path"])
	assert.Equal(t, "x=1", entry["query"])
	assert.EqualValues(t, 201, entry["status"])
	assert.EqualValues(t, 2, entry["bytes"])
}

func TestLogging_ServerErrorsLoggedAtError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/notes", nil))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"internal server error"}`, rr.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestLimitRequestBody(t *testing.T) {
	var readErr error
	h := LimitRequestBody(8)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	h.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(strings.Repeat("x", 64))))

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
