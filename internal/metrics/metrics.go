package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "canang"

// Metrics holds the application collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	ArchivesCreated  prometheus.Counter
	OrdersArchived   prometheus.Counter
	RevenueArchived  prometheus.Counter
	ArchiveFailures  prometheus.Counter
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them in reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		ArchivesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archives_created_total",
			Help:      "Number of successful print and reset runs.",
		}),
		OrdersArchived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_archived_total",
			Help:      "Number of orders moved into archives.",
		}),
		RevenueArchived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_archived_rupiah_total",
			Help:      "Revenue closed into archives, in rupiah.",
		}),
		ArchiveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_failures_total",
			Help:      "Number of print and reset runs rolled back.",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		RequestsDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.ArchivesCreated,
		m.OrdersArchived,
		m.RevenueArchived,
		m.ArchiveFailures,
		m.RequestsTotal,
		m.RequestsDuration,
	)

	return m
}

// ArchiveCreated records a committed archive.
func (m *Metrics) ArchiveCreated(orders int, total decimal.Decimal) {
	m.ArchivesCreated.Inc()
	m.OrdersArchived.Add(float64(orders))
	m.RevenueArchived.Add(total.InexactFloat64())
}

// ArchiveFailed records a rolled back archive.
func (m *Metrics) ArchiveFailed() {
	m.ArchiveFailures.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware counts requests by chi route pattern, so that
// /orders/done/1 and /orders/done/2 share a series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.RequestsDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	}
	return http.HandlerFunc(f)
}
