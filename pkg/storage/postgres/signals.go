package postgres

import (
	"context"
	"fmt"
	"time"

	"aurora/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const signalPointsTable = "signal_points"

// StoreSignalPoints inserts raw signal observations.
func (p *PgSQL) StoreSignalPoints(ctx context.Context, points ...domain.SignalPoint) error {
	if len(points) == 0 {
		return nil
	}

	rows := make([]PgSignalPoint, len(points))
	for i := range rows {
		rows[i].FromDomain(points[i])
	}

	if _, err := p.Builder.Insert(signalPointsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store signal points into pg: %w", err)
	}

	return nil
}

// SignalNames returns the distinct signal names observed since the given time.
func (p *PgSQL) SignalNames(ctx context.Context, since time.Time) ([]string, error) {
	var names []string
	if err := p.Builder.From(signalPointsTable).
		Select(goqu.I("signal")).
		Where(goqu.I("ts").Gte(since)).
		Distinct().
		Order(goqu.I("signal").Asc()).
		Executor().ScanValsContext(ctx, &names); err != nil {
		return nil, fmt.Errorf("could not get signal names from pg: %w", err)
	}

	return names, nil
}

// SignalPoints returns all observations for one signal since the given time,
// oldest first.
func (p *PgSQL) SignalPoints(ctx context.Context, signal string, since time.Time) ([]domain.SignalPoint, error) {
	var rows []PgSignalPoint
	if err := p.Builder.From(signalPointsTable).
		Where(
			goqu.I("signal").Eq(signal),
			goqu.I("ts").Gte(since),
		).
		Order(goqu.I("ts").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get signal points from pg: %w", err)
	}

	out := make([]domain.SignalPoint, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}
