package forecast

import (
	"errors"
	"math"
	"time"

	"aurora/internal/config"
	"aurora/pkg/domain"
	"aurora/pkg/serrors"

	"github.com/google/uuid"
)

// ErrInsufficientData marks a signal whose history is too short to forecast.
// Callers typically skip or snooze rather than fail on it.
var ErrInsufficientData = serrors.NewKind("INSUFFICIENT_DATA") //nolint: gochecknoglobals

// minSeriesLen is the minimum number of weekly buckets a signal needs before
// the pipeline attempts a forecast.
const minSeriesLen = 4

const (
	defaultSpikeWindow    = 7
	defaultSpikeThreshold = 2.5
)

// Options configure the forecast pipeline and how its jobs are enqueued.
type Options struct {
	// Horizon is the number of weekly periods to project.
	Horizon int
	// SpikeWindow is the rolling window used for spike detection.
	SpikeWindow int
	// SpikeThreshold is the number of standard deviations above the rolling
	// mean that counts as a spike.
	SpikeThreshold float64
	// Lookback is how far back signal points are loaded for a run.
	Lookback time.Duration
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing a forecast job before marking it failed.
	MaxAttempts int
	// UniquePeriod is the window during which a second forecast job for the
	// same signal is treated as a duplicate and skipped.
	UniquePeriod time.Duration
}

// NewOptions constructs pipeline options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Horizon:        cfg.Forecast.Horizon,
		SpikeWindow:    defaultSpikeWindow,
		SpikeThreshold: defaultSpikeThreshold,
		Lookback:       cfg.Forecast.Lookback,
		MaxAttempts:    cfg.Forecast.MaxAttempts,
		UniquePeriod:   cfg.Forecast.UniquePeriod,
	}
}

// BuildTrend runs spike detection, forecasting and scoring for one aggregated
// series and assembles the resulting trend record. It returns
// ErrInsufficientData when the series has fewer than minSeriesLen buckets.
func BuildTrend(series Series, opts Options) (*domain.Trend, error) {
	values := series.Values()
	if len(values) < minSeriesLen {
		return nil, serrors.With(ErrInsufficientData,
			"signal %s has %d weekly buckets, need at least %d", series.Signal, len(values), minSeriesLen)
	}

	spikes := DetectSpikes(values, opts.SpikeWindow, opts.SpikeThreshold)
	trajectory := Forecast(values, opts.Horizon)

	current := values[len(values)-1]
	growthRate := 0.0
	if current > 0 && len(trajectory) > 0 {
		growthRate = (trajectory[len(trajectory)-1] - current) / current * 100
	}

	mean, std := meanStd(values)
	var total float64
	for _, v := range values {
		total += v
	}

	// log of total volume as a proxy for how much data backs this signal
	dataVolume := math.Log1p(total)

	// coefficient-of-variation based: erratic series score lower
	consistency := 50.0
	if mean > 0 {
		consistency = 100 - std/mean*100
	}

	_, forecastStd := meanStd(trajectory)
	intervalWidth := 2 * forecastStd

	strength := strengthScore(current, growthRate, series.Sentiment, len(series.Sources))

	return &domain.Trend{
		ID:         domain.TrendID(uuid.New()),
		Signal:     series.Signal,
		Strength:   strength,
		Confidence: confidenceScore(dataVolume, consistency, intervalWidth),
		Phase:      classifyPhase(growthRate, strength),
		GrowthRate: growthRate,
		Sentiment:  series.Sentiment,
		Spikes:     countSpikes(spikes),
		Trajectory: trajectory,
		Sources:    series.Sources,
		Regions:    series.Regions,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Run aggregates raw points and builds a trend per signal, silently skipping
// signals with insufficient history. Output order follows the sorted signal
// names from aggregation.
func Run(points []domain.SignalPoint, opts Options) ([]domain.Trend, error) {
	var trends []domain.Trend
	for _, series := range Aggregate(points) {
		trend, err := BuildTrend(series, opts)
		if err != nil {
			if errors.Is(err, ErrInsufficientData) {
				continue
			}

			return nil, err
		}

		trends = append(trends, *trend)
	}

	return trends, nil
}
