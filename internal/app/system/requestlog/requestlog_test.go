package requestlog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/bloodbank/internal/app/system/requestlog"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID_Generated(t *testing.T) {
	var seen string
	h := requestlog.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestlog.ID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a generated request ID in context")
	}
	if got := rec.Header().Get(requestlog.HeaderRequestID); got != seen {
		t.Errorf("response header = %q, want %q", got, seen)
	}
}

func TestRequestID_Reused(t *testing.T) {
	var seen string
	h := requestlog.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestlog.ID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestlog.HeaderRequestID, "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "abc-123" {
		t.Errorf("request ID = %q, want %q", seen, "abc-123")
	}
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	r := chi.NewRouter()
	r.Use(requestlog.RequestID)
	r.Use(requestlog.AccessLog(logger))
	r.Get("/users/{email}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/a@x.com", nil))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 access log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["route"] != "/users/{email}" {
		t.Errorf("route = %v, want /users/{email}", fields["route"])
	}
	if fields["status"] != int64(http.StatusNotFound) {
		t.Errorf("status = %v, want 404", fields["status"])
	}
	if fields["bytes"] != int64(4) {
		t.Errorf("bytes = %v, want 4", fields["bytes"])
	}
	if id, _ := fields["request_id"].(string); id == "" {
		t.Error("expected request_id field")
	}
}
