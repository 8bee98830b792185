package storage

import (
	"context"
	"time"

	"aurora/pkg/domain"
)

// SignalStorage persists and queries raw trend signal observations.
type SignalStorage interface {
	// StoreSignalPoints inserts the given raw observations.
	StoreSignalPoints(ctx context.Context, points ...domain.SignalPoint) error
	// SignalNames returns the distinct signal names observed since the given
	// time, sorted alphabetically.
	SignalNames(ctx context.Context, since time.Time) ([]string, error)
	// SignalPoints returns all observations for one signal since the given
	// time, oldest first.
	SignalPoints(ctx context.Context, signal string, since time.Time) ([]domain.SignalPoint, error)
}
