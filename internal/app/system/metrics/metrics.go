// Package metrics exposes Prometheus instruments for the HTTP layer, the
// user store and the reference-data loader.
//
// Each Metrics owns its registry so tests and multiple routers never collide
// on the global default registerer. All methods are safe on a nil receiver,
// which turns instrumentation off.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

const namespace = "bloodbank"

// Metrics bundles the registry with every instrument the service records.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         prometheus.Gauge

	StoreOpDuration *prometheus.HistogramVec
	StoreErrors     *prometheus.CounterVec

	RefdataLoads *prometheus.CounterVec
}

// New builds a Metrics with a fresh registry, including the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
		StoreOpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "op_duration_seconds",
				Help:      "MongoDB operation latency by logical op.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"op", "status"},
		),
		StoreErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "errors_total",
				Help:      "MongoDB errors by logical op and class.",
			},
			[]string{"op", "class"},
		),
		RefdataLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "refdata",
				Name:      "loads_total",
				Help:      "Reference data file loads by dataset and result.",
			},
			[]string{"dataset", "result"}, // result=ok|error
		),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal, m.RequestsDuration, m.InFlight,
		m.StoreOpDuration, m.StoreErrors,
		m.RefdataLoads,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware records request count, latency and in-flight requests.
// The route label is the chi route pattern, so path parameters such as an
// email address never become label values.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := RoutePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)
		m.RequestsTotal.WithLabelValues(r.Method, route, code).Inc()
		m.RequestsDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
	})
}

// ObserveStore runs fn and records its latency and, on failure, its error
// class under the given logical op name.
func (m *Metrics) ObserveStore(op string, fn func() error) error {
	if m == nil {
		return fn()
	}
	start := time.Now()
	err := fn()

	status := "ok"
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		status = "error"
		m.StoreErrors.WithLabelValues(op, classifyStoreErr(err)).Inc()
	}
	m.StoreOpDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
	return err
}

// RefdataLoaded counts one reference-data load.
func (m *Metrics) RefdataLoaded(dataset string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RefdataLoads.WithLabelValues(dataset, result).Inc()
}

// RoutePattern returns the matched chi route pattern, or "unmatched".
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func classifyStoreErr(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case mongo.IsNetworkError(err):
		return "network"
	case mongo.IsDuplicateKeyError(err):
		return "duplicate_key"
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		return "write"
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return "command"
	}
	if strings.Contains(strings.ToLower(err.Error()), "server selection") {
		return "server_selection"
	}
	return "unknown"
}
