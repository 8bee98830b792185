// Package metrics holds shared Prometheus collectors and histogram buckets
// used across the harness.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ForecastRuns counts completed forecast pipeline runs by outcome.
	ForecastRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aurora",
		Subsystem: "forecast",
		Name:      "runs_total",
		Help:      "Completed trend forecast runs partitioned by outcome.",
	}, []string{"outcome"})

	// ForecastDuration observes how long a single signal forecast takes.
	ForecastDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "aurora",
		Subsystem: "forecast",
		Name:      "duration_seconds",
		Help:      "Duration of a single signal forecast.",
		Buckets:   DefaultBuckets,
	})

	// ProbeFailures counts failed dependency probes by check name, as observed
	// by the /healthz endpoint.
	ProbeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aurora",
		Subsystem: "health",
		Name:      "probe_failures_total",
		Help:      "Failed dependency liveness probes partitioned by check name.",
	}, []string{"check"})
)
