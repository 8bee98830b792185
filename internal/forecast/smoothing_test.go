package forecast_test

import (
	"testing"

	"aurora/internal/forecast"

	"github.com/stretchr/testify/require"
)

func TestForecast_ZeroHorizon(t *testing.T) {
	require.Nil(t, forecast.Forecast([]float64{1, 2, 3}, 0))
}

func TestForecast_EmptySeries(t *testing.T) {
	out := forecast.Forecast(nil, 4)
	require.Equal(t, []float64{0, 0, 0, 0}, out)
}

func TestForecast_ShortSeriesIsNaive(t *testing.T) {
	// fewer than 24 observations: repeat the last value
	out := forecast.Forecast([]float64{3, 7, 5}, 6)
	require.Len(t, out, 6)
	for _, v := range out {
		require.InDelta(t, 5.0, v, 1e-9)
	}
}

func TestForecast_DampedTrendFollowsGrowth(t *testing.T) {
	// steadily increasing series long enough for the damped-trend model
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(10 + 2*i)
	}

	out := forecast.Forecast(values, 8)
	require.Len(t, out, 8)

	last := values[len(values)-1]
	// a growing series should project above its last observation
	require.Greater(t, out[0], last*0.9)
	// damping keeps later periods from growing faster than earlier ones
	for i := 1; i < len(out); i++ {
		step := out[i] - out[i-1]
		prevStep := out[1] - out[0]
		require.LessOrEqual(t, step, prevStep+1e-9)
	}
}

func TestForecast_NeverNegative(t *testing.T) {
	// steeply declining series long enough for the damped-trend model
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(300 - 10*i)
	}

	out := forecast.Forecast(values, 20)
	for i, v := range out {
		require.GreaterOrEqual(t, v, 0.0, "period %d should be clamped at zero", i)
	}
}
