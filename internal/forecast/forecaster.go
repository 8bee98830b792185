package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aurora/pkg/domain"
	"aurora/pkg/logger"
	"aurora/pkg/metrics"
	"aurora/pkg/serrors"
	"aurora/pkg/storage"

	"go.uber.org/zap"
)

// forecaster is the concrete implementation of the Forecaster interface.
// It coordinates persistence with the storage layer and job enqueueing.
type forecaster struct {
	// options holds runtime configuration for the pipeline and job queue.
	options Options
	// storage is the persistence layer used to read signal history, store
	// trends and manage jobs.
	storage storage.Storage
}

// Enqueue schedules a background forecast job for the given signal. River
// unique jobs prevent having duplicate jobs for the same signal within the
// configured period, in which case false is returned.
func (f forecaster) Enqueue(ctx context.Context, signal string) (bool, error) {
	if signal == "" {
		return false, serrors.With(serrors.ErrBadRequest, "signal name is required")
	}

	added, err := f.storage.AddJob(ctx, JobArgs{
		Signal:       signal,
		maxAttempts:  f.options.MaxAttempts,
		uniquePeriod: f.options.UniquePeriod,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add job: %w", err)
	}

	return added, nil
}

// EnqueueAll schedules a forecast job for every signal observed within the
// lookback window. Jobs skipped as duplicates do not count towards the result.
func (f forecaster) EnqueueAll(ctx context.Context) (int, error) {
	since := time.Now().UTC().Add(-f.options.Lookback)
	signals, err := f.storage.SignalNames(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("could not get signal names: %w", err)
	}

	added := 0
	for _, signal := range signals {
		ok, err := f.Enqueue(ctx, signal)
		if err != nil {
			return added, fmt.Errorf("could not enqueue signal %q: %w", signal, err)
		}
		if ok {
			added++
		}
	}

	return added, nil
}

// ForecastSignal loads the signal's history, runs the pipeline and persists
// the resulting trend. It returns ErrInsufficientData when the history is too
// short to forecast.
func (f forecaster) ForecastSignal(ctx context.Context, signal string) (*domain.Trend, error) {
	start := time.Now()

	points, err := f.storage.SignalPoints(ctx, signal, start.UTC().Add(-f.options.Lookback))
	if err != nil {
		metrics.ForecastRuns.WithLabelValues("error").Inc()

		return nil, fmt.Errorf("could not get signal points: %w", err)
	}
	if len(points) == 0 {
		metrics.ForecastRuns.WithLabelValues("insufficient_data").Inc()

		return nil, serrors.With(ErrInsufficientData, "no observations for signal %s", signal)
	}

	series := Aggregate(points)
	trend, err := BuildTrend(series[0], f.options)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			metrics.ForecastRuns.WithLabelValues("insufficient_data").Inc()
		} else {
			metrics.ForecastRuns.WithLabelValues("error").Inc()
		}

		return nil, fmt.Errorf("could not build trend: %w", err)
	}

	stored, err := f.storage.StoreTrends(ctx, *trend)
	if err != nil {
		metrics.ForecastRuns.WithLabelValues("error").Inc()

		return nil, fmt.Errorf("could not store trend: %w", err)
	}

	metrics.ForecastRuns.WithLabelValues("success").Inc()
	metrics.ForecastDuration.Observe(time.Since(start).Seconds())
	logger.Info(ctx, "signal forecasted",
		zap.String("signal", signal),
		zap.String("phase", string(stored[0].Phase)),
		zap.Float64("strength", stored[0].Strength))

	return &stored[0], nil
}

// ForecastAll runs the pipeline for every signal observed within the lookback
// window, skipping signals whose history is too short.
func (f forecaster) ForecastAll(ctx context.Context) ([]domain.Trend, error) {
	since := time.Now().UTC().Add(-f.options.Lookback)
	signals, err := f.storage.SignalNames(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("could not get signal names: %w", err)
	}

	var trends []domain.Trend
	for _, signal := range signals {
		trend, err := f.ForecastSignal(ctx, signal)
		if err != nil {
			if errors.Is(err, ErrInsufficientData) {
				logger.Debug(ctx, "skipping signal with insufficient history", zap.String("signal", signal))

				continue
			}

			return nil, err
		}

		trends = append(trends, *trend)
	}

	return trends, nil
}

// New creates a new Forecaster instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Forecaster {
	return &forecaster{
		options: options,
		storage: storage,
	}
}
