package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/bloodbank/internal/app/features/home"
	"go.uber.org/zap"
)

func TestServeRoot(t *testing.T) {
	h := home.NewHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got, want := rec.Body.String(), "Blood Donation Server Running for Assignment 12"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}
