package worker_test

import (
	"context"
	"errors"
	"testing"

	"aurora/internal/forecast"
	"aurora/internal/worker"
	"aurora/pkg/domain"
	"aurora/pkg/logger"
	"aurora/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// fakeForecaster returns canned results per signal.
type fakeForecaster struct {
	trends map[string]*domain.Trend
	errs   map[string]error
}

func (f *fakeForecaster) Enqueue(_ context.Context, _ string) (bool, error) { return false, nil }
func (f *fakeForecaster) EnqueueAll(_ context.Context) (int, error)         { return 0, nil }
func (f *fakeForecaster) ForecastAll(_ context.Context) ([]domain.Trend, error) {
	return nil, nil
}

func (f *fakeForecaster) ForecastSignal(_ context.Context, signal string) (*domain.Trend, error) {
	if err := f.errs[signal]; err != nil {
		return nil, err
	}

	return f.trends[signal], nil
}

func makeJob(id int64, signal string) *river.Job[forecast.JobArgs] {
	return &river.Job[forecast.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   forecast.JobArgs{Signal: signal},
	}
}

func TestTrendForecastWorker_Work_Success(t *testing.T) {
	w := worker.NewTrendForecastWorker(&fakeForecaster{
		trends: map[string]*domain.Trend{
			"crochet tops": {Signal: "crochet tops", Phase: domain.TrendPhaseGrowing, Strength: 80},
		},
	})

	require.NoError(t, w.Work(context.Background(), makeJob(1, "crochet tops")))
}

func TestTrendForecastWorker_Work_InsufficientDataSnoozes(t *testing.T) {
	w := worker.NewTrendForecastWorker(&fakeForecaster{
		errs: map[string]error{
			"sparse": serrors.With(forecast.ErrInsufficientData, "only one bucket"),
		},
	})

	err := w.Work(context.Background(), makeJob(2, "sparse"))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
}

func TestTrendForecastWorker_Work_GenericErrorWrapped(t *testing.T) {
	w := worker.NewTrendForecastWorker(&fakeForecaster{
		errs: map[string]error{
			"broken": errors.New("boom"),
		},
	})

	err := w.Work(context.Background(), makeJob(3, "broken"))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}
