package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard service.
type Metrics struct {
	// Upstream fetch metrics.
	FetchRequests *prometheus.CounterVec // labels: outcome={success,http_error,parse_error}
	FetchDuration prometheus.Histogram

	// Loader cache metrics.
	CacheLookups *prometheus.CounterVec // labels: result={hit,miss}

	// Render pass metrics.
	Renders          *prometheus.CounterVec // labels: outcome={success,error}
	RenderDuration   prometheus.Histogram
	ObservationCount prometheus.Gauge
	ServiceReady     prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.CacheLookups,
		m.Renders,
		m.RenderDuration,
		m.ObservationCount,
		m.ServiceReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_mood",
			Name:      "fetch_requests_total",
			Help:      "GISTEMP fetch attempts by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_mood",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of GISTEMP CSV download and parse.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_mood",
			Name:      "cache_lookups_total",
			Help:      "Loader cache lookups by result.",
		}, []string{"result"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_mood",
			Name:      "renders_total",
			Help:      "Dashboard render passes by outcome.",
		}, []string{"outcome"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_mood",
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete load-reshape-analyze-build pass.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		ObservationCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_mood",
			Name:      "observations",
			Help:      "Number of monthly observations in the current dataset.",
		}),
		ServiceReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_mood",
			Name:      "ready",
			Help:      "1 once the first dataset load has succeeded, 0 before.",
		}),
	}
}
