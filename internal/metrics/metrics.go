package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	globalMetrics *Metrics
	globalMu      sync.RWMutex
)

// Metrics holds all Prometheus metrics for the content API.
type Metrics struct {
	// HTTP metrics
	RequestsTotal          *prometheus.CounterVec
	RequestDurationSeconds *prometheus.HistogramVec

	// Domain counters
	ValidityChecksTotal     *prometheus.CounterVec
	ContactSubmissionsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered on its
// own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentd_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "contentd_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ValidityChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentd_validity_checks_total",
				Help: "Total number of campaign validity evaluations by outcome",
			},
			[]string{"status"},
		),
		ContactSubmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentd_contact_submissions_total",
				Help: "Total number of accepted contact submissions by category",
			},
			[]string{"category"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDurationSeconds,
		m.ValidityChecksTotal,
		m.ContactSubmissionsTotal,
	)

	return m
}

// SetGlobal sets the global metrics instance used by instrumented code.
func SetGlobal(m *Metrics) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMetrics = m
}

// Global returns the global metrics instance, or nil when metrics are
// disabled.
func Global() *Metrics {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalMetrics
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
