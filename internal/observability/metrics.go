package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric name definitions
const (
	requestCountName   = "request_count"
	requestLatencyName = "request_latency_seconds"
)

// Metrics accumulates request counts and latencies for the whole
// service. It owns a private Prometheus registry, so two Metrics
// values never share state. The underlying Prometheus primitives are
// safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	requestCount   prometheus.Counter
	requestLatency prometheus.Histogram
}

// NewMetrics creates a Metrics accumulator with the request counter
// and latency histogram registered on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: requestCountName,
			Help: "Total API requests",
		}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    requestLatencyName,
			Help:    "Request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(m.requestCount, m.requestLatency)

	return m
}

// RecordRequest increments the request counter by one.
func (m *Metrics) RecordRequest() {
	m.requestCount.Inc()
}

// RecordLatency records an observed request duration in seconds.
func (m *Metrics) RecordLatency(seconds float64) {
	m.requestLatency.Observe(seconds)
}

// Handler returns the HTTP handler that renders the registry in the
// Prometheus text exposition format. It performs no mutation.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests and diagnostics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
