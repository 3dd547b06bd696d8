package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupExporter installs an in-memory exporter as the global provider.
func setupExporter(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
	})
	return exporter, tp
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter, tp := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest("GET", "/notes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	span := spans[0]
	if span.Name != "GET /notes" {
		t.Errorf("expected span name 'GET /notes', got '%s'", span.Name)
	}

	want := map[attribute.Key]bool{"http.method": false, "http.path": false, "http.status_code": false}
	for _, attr := range span.Attributes {
		switch attr.Key {
		case "http.method":
			want[attr.Key] = attr.Value.AsString() == "GET"
		case "http.path":
			want[attr.Key] = attr.Value.AsString() == "/notes"
		case "http.status_code":
			want[attr.Key] = attr.Value.AsInt64() == 200
		}
	}
	for k, ok := range want {
		if !ok {
			t.Errorf("attribute %s missing or wrong", k)
		}
	}
}

func TestMiddleware_AddsTraceIDToResponse(t *testing.T) {
	setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))

	traceID := rr.Header().Get("X-Trace-Id")
	if len(traceID) != 32 {
		t.Errorf("expected 32 hex char trace id, got %q", traceID)
	}
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter, tp := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/notes", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("expected propagated trace id, got %s", got)
	}
}

func TestMiddleware_MarksErrorSpansFor5xx(t *testing.T) {
	exporter, tp := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/notes", nil))
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status.Code)
	}
}

func TestMiddleware_NoErrorFor4xx(t *testing.T) {
	exporter, tp := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/notes/x", nil))
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" {
			t.Error("unexpected error attribute for 4xx response")
		}
	}
}

func TestStartSpan_RecordError(t *testing.T) {
	exporter, tp := setupExporter(t)

	_, span := StartSpan(context.Background(), "note.Create", attribute.String("note.id", "abc"))
	RecordError(span, errors.New("insert failed"))
	RecordError(span, nil)
	span.End()
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "note.Create" {
		t.Errorf("span name = %s", spans[0].Name)
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status.Code)
	}
	if len(spans[0].Events) != 1 {
		t.Errorf("expected 1 error event, got %d", len(spans[0].Events))
	}
}

func TestNewProvider(t *testing.T) {
	tp := NewProvider("notes-api-test", "v0.0.0")
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})

	_, span := StartSpan(context.Background(), "probe")
	defer span.End()
	if !span.SpanContext().HasTraceID() {
		t.Error("expected a sampled span with a trace id")
	}
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	if rw.statusCode != http.StatusOK {
		t.Errorf("expected default status code 200, got %d", rw.statusCode)
	}
	rw.WriteHeader(http.StatusCreated)
	if rw.statusCode != http.StatusCreated {
		t.Errorf("expected status code 201, got %d", rw.statusCode)
	}
}
