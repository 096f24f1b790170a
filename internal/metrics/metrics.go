// Package metrics holds the Prometheus collectors recorded by the store and
// the HTTP adapter. A nil *Metrics is valid and records nothing, which keeps
// tests and CLI commands free of registry setup.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	storeReads          *prometheus.CounterVec
	storeWrites         *prometheus.CounterVec
	storeParseFailures  *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		storeReads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "admanager_store_reads_total",
			Help: "Collection reads from the key-value store",
		}, []string{"key"}),
		storeWrites: f.NewCounterVec(prometheus.CounterOpts{
			Name: "admanager_store_writes_total",
			Help: "Full collection writes to the key-value store",
		}, []string{"key"}),
		storeParseFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "admanager_store_parse_failures_total",
			Help: "Stored collections that could not be decoded and were replaced by the default",
		}, []string{"key"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admanager_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) StoreRead(key string) {
	if m == nil {
		return
	}
	m.storeReads.WithLabelValues(key).Inc()
}

func (m *Metrics) StoreWrite(key string) {
	if m == nil {
		return
	}
	m.storeWrites.WithLabelValues(key).Inc()
}

func (m *Metrics) StoreParseFailure(key string) {
	if m == nil {
		return
	}
	m.storeParseFailures.WithLabelValues(key).Inc()
}

func (m *Metrics) HTTPRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
