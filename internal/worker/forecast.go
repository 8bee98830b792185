package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aurora/internal/forecast"
	"aurora/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// insufficientDataSnooze is how long a forecast job sleeps when the signal
// does not yet have enough history. New observations arrive continuously, so
// the job is deferred rather than failed.
const insufficientDataSnooze = 24 * time.Hour

// TrendForecastWorker is a River worker that forecasts a single signal using
// the provided Forecaster. It embeds River's WorkerDefaults to integrate with
// the job runtime.
type TrendForecastWorker struct {
	river.WorkerDefaults[forecast.JobArgs]

	forecaster forecast.Forecaster
}

// NewTrendForecastWorker constructs a TrendForecastWorker using the provided forecaster.
func NewTrendForecastWorker(forecaster forecast.Forecaster) *TrendForecastWorker {
	return &TrendForecastWorker{
		forecaster: forecaster,
	}
}

// Work executes a single forecast job. Signals with too little history are
// snoozed instead of retried so they don't burn through the attempt budget.
func (t *TrendForecastWorker) Work(ctx context.Context, job *river.Job[forecast.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("signal", job.Args.Signal))

	trend, err := t.forecaster.ForecastSignal(ctx, job.Args.Signal)
	if err != nil {
		if errors.Is(err, forecast.ErrInsufficientData) {
			logger.Info(ctx, "not enough history yet, snoozing job")

			return river.JobSnooze(insufficientDataSnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error forecasting signal", zap.Error(err))

		return fmt.Errorf("could not forecast signal: %w", err)
	}

	logger.Info(ctx, "signal forecasted successfully",
		zap.String("phase", string(trend.Phase)),
		zap.Float64("strength", trend.Strength))

	return nil
}
