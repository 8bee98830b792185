// Package ops exposes the operational HTTP listener: Prometheus metrics,
// dependency health and pprof. It carries no business endpoints.
package ops

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aurora/internal/config"
	"aurora/internal/gate"
	"aurora/pkg/controller"
	"aurora/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Options holds configuration for the ops HTTP server.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// ProbeTimeout bounds each dependency probe run by the health endpoint.
	ProbeTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Ops.Addr,
		ReadTimeout:       cfg.Ops.ReadTimeout,
		ReadHeaderTimeout: cfg.Ops.ReadHeaderTimeout,
		WriteTimeout:      cfg.Ops.WriteTimeout,
		IdleTimeout:       cfg.Ops.IdleTimeout,
		MaxHeaderBytes:    cfg.Ops.MaxHeaderBytes,
		MetricsPath:       cfg.Ops.MetricsPath,
		ProbeTimeout:      cfg.Gate.ProbeTimeout,
	}
}

// NewServer wires up and returns a configured *http.Server using the provided
// Options. It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - /healthz backed by the same dependency checks the readiness gate runs
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares.
func NewServer(checks []gate.Check, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := mp.Meter("aurora/ops")
	healthRequests, err := meter.Int64Counter("health_requests",
		metric.WithDescription("Health endpoint requests partitioned by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create health request counter: %w", err)
	}

	mux.HandleFunc("/healthz", healthHandler(checks, opts.ProbeTimeout, healthRequests))

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// healthHandler runs every dependency check within the probe timeout and
// reports 200 when all pass, 503 otherwise. Failed probes are counted in the
// shared Prometheus collectors.
func healthHandler(checks []gate.Check,
	probeTimeout time.Duration,
	healthRequests metric.Int64Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var failed []string
		for _, check := range checks {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			err := check.Ready(probeCtx)
			cancel()
			if err != nil {
				metrics.ProbeFailures.WithLabelValues(check.Name()).Inc()
				failed = append(failed, check.Name())
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(failed) > 0 {
			healthRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "unavailable")))
			w.WriteHeader(http.StatusServiceUnavailable)
			for _, name := range failed {
				fmt.Fprintf(w, "%s: not ready\n", name)
			}

			return
		}

		healthRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "ok")))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}
}
