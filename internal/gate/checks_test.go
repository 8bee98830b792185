package gate_test

import (
	"testing"
	"time"

	"aurora/internal/config"
	"aurora/internal/gate"
	"aurora/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func testConfig(checks ...string) *config.Config {
	cfg := &config.Config{}
	cfg.Gate.Checks = checks
	cfg.Gate.ProbeTimeout = time.Second
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = 6379
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.Username = "postgres"
	cfg.Database.DatabaseName = "aurora"
	cfg.Database.SslMode = "disable"

	return cfg
}

func TestFromConfig_BuildsChecksInOrder(t *testing.T) {
	checks, err := gate.FromConfig(testConfig("redis", "postgres"))
	require.NoError(t, err)
	require.Len(t, checks, 2)
	require.Equal(t, "redis", checks[0].Name())
	require.Equal(t, "postgres", checks[1].Name())
}

func TestFromConfig_SingleDependencyProfile(t *testing.T) {
	// worker-only deployments gate on the cache store alone
	checks, err := gate.FromConfig(testConfig("redis"))
	require.NoError(t, err)
	require.Len(t, checks, 1)
	require.Equal(t, "redis", checks[0].Name())
}

func TestFromConfig_NamesAreNormalized(t *testing.T) {
	checks, err := gate.FromConfig(testConfig(" Redis ", "POSTGRES"))
	require.NoError(t, err)
	require.Len(t, checks, 2)
}

func TestFromConfig_UnknownCheck(t *testing.T) {
	_, err := gate.FromConfig(testConfig("redis", "kafka"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
