package forecast

import "math"

// minSmoothingObservations is the minimum history length for the damped-trend
// model; shorter series fall back to a naive last-value forecast.
const minSmoothingObservations = 24

// Fixed smoothing parameters for the damped-trend model. Level reacts fairly
// quickly, trend more slowly, and the damping factor flattens long-horizon
// projections so a short burst does not extrapolate into runaway growth.
const (
	smoothingLevel = 0.5
	smoothingTrend = 0.3
	dampingFactor  = 0.9
)

// Forecast projects the series horizon periods ahead. Series with at least
// minSmoothingObservations observations use damped-trend double exponential
// smoothing; shorter ones repeat the last observed value. Projections are
// clamped at zero since signal frequencies cannot go negative.
func Forecast(values []float64, horizon int) []float64 {
	if horizon <= 0 {
		return nil
	}
	if len(values) == 0 {
		return make([]float64, horizon)
	}
	if len(values) < minSmoothingObservations {
		return naiveForecast(values[len(values)-1], horizon)
	}

	return dampedTrendForecast(values, horizon)
}

// naiveForecast repeats the last observation for every period.
func naiveForecast(last float64, horizon int) []float64 {
	out := make([]float64, horizon)
	for i := range out {
		out[i] = math.Max(0, last)
	}

	return out
}

// dampedTrendForecast implements Holt's linear method with multiplicative
// damping of the trend component.
func dampedTrendForecast(values []float64, horizon int) []float64 {
	level := values[0]
	trend := values[1] - values[0]

	for _, v := range values[1:] {
		prevLevel := level
		level = smoothingLevel*v + (1-smoothingLevel)*(prevLevel+dampingFactor*trend)
		trend = smoothingTrend*(level-prevLevel) + (1-smoothingTrend)*dampingFactor*trend
	}

	out := make([]float64, horizon)
	damp := dampingFactor
	cumulative := damp
	for i := range out {
		out[i] = math.Max(0, level+cumulative*trend)
		damp *= dampingFactor
		cumulative += damp
	}

	return out
}
