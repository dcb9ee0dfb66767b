// Package metrics exposes the service's Prometheus instruments.  All metrics
// live on a private registry so tests never collide with the global default.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geoinsight"

// Metrics bundles every instrument the service records.
type Metrics struct {
	registry *prometheus.Registry

	// Pipeline
	RunsTotal     *prometheus.CounterVec // labels: domain, status
	RunDuration   *prometheus.HistogramVec
	RowsProcessed *prometheus.CounterVec
	RowsSkipped   *prometheus.CounterVec // labels: domain, reason

	// Upstream statistics source
	UpstreamRequests       *prometheus.CounterVec // labels: indicator, outcome
	SyntheticSubstitutions *prometheus.CounterVec

	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec // labels: method, path, status
	HTTPRequestDuration *prometheus.HistogramVec

	// Caches
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

var runDurationBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}

// New builds and registers all instruments on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())

	m := &Metrics{
		registry: registry,
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed analysis runs by domain and status.",
		}, []string{"domain", "status"}),
		RunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one analysis run.",
			Buckets:   runDurationBuckets,
		}, []string{"domain"}),
		RowsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_processed_total",
			Help:      "Input rows accepted into an analysis.",
		}, []string{"domain"}),
		RowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Input rows dropped before scoring.",
		}, []string{"domain", "reason"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Statistics API fetches by indicator and outcome.",
		}, []string{"indicator", "outcome"}),
		SyntheticSubstitutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synthetic_substitutions_total",
			Help:      "Indicators filled with synthetic values after a failed fetch.",
		}, []string{"domain"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Boundary snapshot cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Boundary snapshot cache misses.",
		}),
	}

	registry.MustRegister(
		m.RunsTotal, m.RunDuration, m.RowsProcessed, m.RowsSkipped,
		m.UpstreamRequests, m.SyntheticSubstitutions,
		m.HTTPRequestsTotal, m.HTTPRequestDuration,
		m.CacheHits, m.CacheMisses,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Timer measures one operation into a histogram observer.
type Timer struct {
	observer prometheus.Observer
	start    time.Time
}

// NewTimer starts a Timer.  A nil observer makes ObserveDuration a no-op.
func NewTimer(observer prometheus.Observer) *Timer {
	return &Timer{observer: observer, start: time.Now()}
}

// ObserveDuration records the elapsed time since the Timer was started.
func (t *Timer) ObserveDuration() {
	if t.observer == nil {
		return
	}
	t.observer.Observe(time.Since(t.start).Seconds())
}
