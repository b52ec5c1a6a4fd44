package places_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errorsfeature "github.com/dalemusser/bloodbank/internal/app/features/errors"
	"github.com/dalemusser/bloodbank/internal/app/features/places"
	"github.com/dalemusser/bloodbank/internal/app/system/metrics"
	"github.com/dalemusser/bloodbank/internal/testutil"
	"github.com/go-chi/chi/v5"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, districts, upazilas string, m *metrics.Metrics) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	h := places.NewHandler(districts, upazilas, m, errorsfeature.NewErrorLogger(logger), logger)
	r := chi.NewRouter()
	places.MountRoutes(r, h)
	return r
}

func TestServeDistricts_Sorted(t *testing.T) {
	districts := testutil.WriteRefFile(t, "districts.json", `[{"name":"Khulna"},{"name":"Dhaka"}]`)
	r := newTestRouter(t, districts, "", nil)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/districts", nil))

	rec.AssertStatus(t, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	want := `[{"name":"Dhaka"},{"name":"Khulna"}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestServeUpazilas_SortedWithFields(t *testing.T) {
	upazilas := testutil.WriteRefFile(t, "upazilas.json",
		`[{"id":"2","district_id":"1","name":"Debidwar"},{"id":"1","district_id":"1","name":"Barura"}]`)
	r := newTestRouter(t, "", upazilas, nil)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/upazilas", nil))

	rec.AssertStatus(t, http.StatusOK)
	var got []map[string]string
	rec.AssertJSON(t, &got)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0]["name"] != "Barura" || got[0]["id"] != "1" || got[0]["district_id"] != "1" {
		t.Errorf("first = %v", got[0])
	}
	if got[1]["name"] != "Debidwar" {
		t.Errorf("second = %v", got[1])
	}
}

func TestServe_RereadsFileEachRequest(t *testing.T) {
	path := testutil.WriteRefFile(t, "districts.json", `[{"name":"Dhaka"}]`)
	r := newTestRouter(t, path, "", nil)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/districts", nil))
	rec.AssertContains(t, "Dhaka")

	if err := os.WriteFile(path, []byte(`[{"name":"Sylhet"}]`), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/districts", nil))
	rec.AssertContains(t, "Sylhet")
}

func TestServe_Failures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	invalid := testutil.WriteRefFile(t, "bad.json", `[{"name":"Dhaka"`)
	noName := testutil.WriteRefFile(t, "noname.json", `[{"name":"Dhaka"},{"id":"9"}]`)

	tests := []struct {
		name    string
		path    string
		target  string
		message string
	}{
		{"districts missing", missing, "/districts", "Failed to load districts"},
		{"districts invalid", invalid, "/districts", "Failed to load districts"},
		{"upazilas missing name", noName, "/upazilas", "Failed to load upazilas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New()
			r := newTestRouter(t, tt.path, tt.path, m)

			rec := testutil.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			rec.AssertStatus(t, http.StatusInternalServerError)
			var body map[string]string
			rec.AssertJSON(t, &body)
			if body["error"] != tt.message {
				t.Errorf("error = %q, want %q", body["error"], tt.message)
			}
			dataset := strings.TrimPrefix(tt.target, "/")
			if got := promtest.ToFloat64(m.RefdataLoads.WithLabelValues(dataset, "error")); got != 1 {
				t.Errorf("refdata error loads = %v, want 1", got)
			}
		})
	}
}
