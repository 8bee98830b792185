package ops_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aurora/internal/gate"
	"aurora/internal/ops"
	"aurora/pkg/logger"
	"aurora/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type stubCheck struct {
	name string
	err  error
}

func (s stubCheck) Name() string                  { return s.name }
func (s stubCheck) Ready(_ context.Context) error { return s.err }

// The otel exporter registers with the global Prometheus registry, so the
// server is built once and shared across subtests.
func TestServer(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	healthy := &stubCheck{name: "redis"}
	failing := &stubCheck{name: "postgres"}

	server, err := ops.NewServer([]gate.Check{healthy, failing}, ops.Options{
		Addr:         ":0",
		MetricsPath:  "/metrics",
		ProbeTimeout: time.Second,
	})
	require.NoError(t, err)

	t.Run("healthz reports failing checks", func(t *testing.T) {
		failing.err = serrors.With(serrors.ErrUnavailable, "connection refused")
		defer func() { failing.err = nil }()

		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		res := rec.Result()
		require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
		require.Contains(t, rec.Body.String(), "postgres: not ready")
		require.NotContains(t, rec.Body.String(), "redis")
	})

	t.Run("healthz ok when all checks pass", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		res := rec.Result()
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Contains(t, rec.Body.String(), "ok")
	})

	t.Run("metrics endpoint serves prometheus text", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		res := rec.Result()
		require.Equal(t, http.StatusOK, res.StatusCode)
		// the failed probe from the first subtest should have been counted
		require.Contains(t, rec.Body.String(), "aurora_health_probe_failures_total")
	})

	t.Run("pprof index is mounted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))

		require.Equal(t, http.StatusOK, rec.Result().StatusCode)
	})
}
