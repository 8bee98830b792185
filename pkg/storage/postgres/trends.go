package postgres

import (
	"context"
	"fmt"
	"sort"

	"aurora/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const trendsTable = "trends"

// StoreTrends inserts trend records and returns the stored rows.
func (p *PgSQL) StoreTrends(ctx context.Context, trends ...domain.Trend) ([]domain.Trend, error) {
	if len(trends) == 0 {
		return nil, nil
	}

	rows := make([]PgTrend, len(trends))
	for i := range rows {
		if err := rows[i].FromDomain(trends[i]); err != nil {
			return nil, err
		}
	}

	var result []PgTrend
	if err := p.Builder.Insert(trendsTable).
		Rows(rows).
		Returning(&PgTrend{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store trends into pg: %w", err)
	}

	return pgTrendsToDomain(result)
}

// LatestTrends returns the most recent trend per signal using DISTINCT ON,
// then orders the result by strength descending. A limit of 0 returns all.
func (p *PgSQL) LatestTrends(ctx context.Context, limit uint) ([]domain.Trend, error) {
	var rows []PgTrend
	if err := p.Builder.From(trendsTable).
		Distinct("signal").
		Order(goqu.I("signal").Asc(), goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get latest trends from pg: %w", err)
	}

	trends, err := pgTrendsToDomain(rows)
	if err != nil {
		return nil, err
	}

	sort.Slice(trends, func(i, j int) bool { return trends[i].Strength > trends[j].Strength })
	if limit > 0 && uint(len(trends)) > limit {
		trends = trends[:limit]
	}

	return trends, nil
}
