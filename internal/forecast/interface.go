package forecast

import (
	"context"

	"aurora/pkg/domain"
)

// Forecaster coordinates trend forecasting: enqueueing background jobs and
// running the pipeline against stored signal history.
type Forecaster interface {
	// Enqueue schedules a background forecast job for one signal. It returns
	// false when an equivalent job already exists in the queue.
	Enqueue(ctx context.Context, signal string) (bool, error)
	// EnqueueAll schedules a forecast job for every signal observed within the
	// lookback window and returns how many jobs were actually added.
	EnqueueAll(ctx context.Context) (int, error)
	// ForecastSignal runs the pipeline for one signal and persists the result.
	ForecastSignal(ctx context.Context, signal string) (*domain.Trend, error)
	// ForecastAll runs the pipeline for every observed signal in-process,
	// skipping signals with insufficient history.
	ForecastAll(ctx context.Context) ([]domain.Trend, error)
}
