package storage

import (
	"context"

	"aurora/pkg/domain"
)

// TrendStorage persists forecast pipeline output.
type TrendStorage interface {
	// StoreTrends inserts one or more trend records and returns the stored rows
	// as they exist in the database.
	StoreTrends(ctx context.Context, trends ...domain.Trend) ([]domain.Trend, error)
	// LatestTrends returns the most recent trend per signal, strongest first,
	// limited by limit (0 means no limit).
	LatestTrends(ctx context.Context, limit uint) ([]domain.Trend, error)
}
