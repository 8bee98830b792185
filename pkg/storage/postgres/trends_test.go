package postgres_test

import (
	"context"
	"testing"
	"time"

	"aurora/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func makeTrend(signal string, strength float64, createdAt time.Time) domain.Trend {
	return domain.Trend{
		ID:         domain.TrendID(uuid.New()),
		Signal:     signal,
		Strength:   strength,
		Confidence: 60,
		Phase:      domain.TrendPhaseGrowing,
		GrowthRate: 12.5,
		Sentiment:  0.7,
		Spikes:     1,
		Trajectory: []float64{10, 11, 12},
		Sources:    map[string]int{"search": 3},
		Regions:    []string{"US"},
		CreatedAt:  createdAt,
	}
}

func TestPgSQL_StoreTrends_RoundTrip(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	trend := makeTrend("crochet tops", 82.5, time.Now().UTC())

	stored, err := pg.StoreTrends(ctx, trend)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	got := stored[0]
	require.Equal(t, trend.ID, got.ID)
	require.Equal(t, "crochet tops", got.Signal)
	require.InDelta(t, 82.5, got.Strength, 1e-9)
	require.Equal(t, domain.TrendPhaseGrowing, got.Phase)
	require.Equal(t, []float64{10, 11, 12}, got.Trajectory)
	require.Equal(t, map[string]int{"search": 3}, got.Sources)
	require.Equal(t, []string{"US"}, got.Regions)
	require.False(t, got.CreatedAt.IsZero())
}

func TestPgSQL_StoreTrends_NilMetadata(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	trend := makeTrend("bare signal", 10, time.Now().UTC())
	trend.Sources = nil
	trend.Regions = nil

	stored, err := pg.StoreTrends(ctx, trend)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.NotNil(t, stored[0].Sources)
	require.Empty(t, stored[0].Sources)
	require.Empty(t, stored[0].Regions)
}

func TestPgSQL_LatestTrends_OnePerSignalStrongestFirst(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// two generations for the same signal plus one other signal
	_, err := pg.StoreTrends(ctx, makeTrend("crochet tops", 40, time.Now().UTC()))
	require.NoError(t, err)
	// created_at is assigned by the database, so insert order decides recency
	time.Sleep(10 * time.Millisecond)
	_, err = pg.StoreTrends(ctx, makeTrend("crochet tops", 90, time.Now().UTC()))
	require.NoError(t, err)
	_, err = pg.StoreTrends(ctx, makeTrend("tweed blazers", 60, time.Now().UTC()))
	require.NoError(t, err)

	trends, err := pg.LatestTrends(ctx, 0)
	require.NoError(t, err)
	require.Len(t, trends, 2)

	// the latest generation wins per signal, strongest first overall
	require.Equal(t, "crochet tops", trends[0].Signal)
	require.InDelta(t, 90.0, trends[0].Strength, 1e-9)
	require.Equal(t, "tweed blazers", trends[1].Signal)

	limited, err := pg.LatestTrends(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, "crochet tops", limited[0].Signal)
}

func TestPgSQL_StoreTrends_Empty(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	stored, err := pg.StoreTrends(context.Background())
	require.NoError(t, err)
	require.Empty(t, stored)
}
