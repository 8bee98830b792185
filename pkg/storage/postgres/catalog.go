package postgres

import (
	"context"
	"fmt"
	"time"

	"aurora/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	skusTable  = "skus"
	salesTable = "sales"
)

// UpsertSKUs inserts or refreshes catalog items keyed by SKU code.
func (p *PgSQL) UpsertSKUs(ctx context.Context, skus ...domain.SKU) error {
	if len(skus) == 0 {
		return nil
	}

	rows := make([]PgSKU, len(skus))
	for i := range rows {
		rows[i].FromDomain(skus[i])
	}

	if _, err := p.Builder.Insert(skusTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("code", goqu.Record{
			"name":          goqu.I("excluded.name"),
			"brand":         goqu.I("excluded.brand"),
			"category":      goqu.I("excluded.category"),
			"color":         goqu.I("excluded.color"),
			"pattern":       goqu.I("excluded.pattern"),
			"season":        goqu.I("excluded.season"),
			"price":         goqu.I("excluded.price"),
			"stock":         goqu.I("excluded.stock"),
			"reorder_point": goqu.I("excluded.reorder_point"),
			"supplier":      goqu.I("excluded.supplier"),
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert skus into pg: %w", err)
	}

	return nil
}

// LowStockSKUs returns items at or below their reorder point, lowest stock first.
func (p *PgSQL) LowStockSKUs(ctx context.Context, limit uint) ([]domain.SKU, error) {
	ds := p.Builder.From(skusTable).
		Where(goqu.I("stock").Lte(goqu.I("reorder_point"))).
		Order(goqu.I("stock").Asc(), goqu.I("code").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgSKU
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get low stock skus from pg: %w", err)
	}

	out := make([]domain.SKU, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

// StoreSales inserts point-of-sale transaction lines.
func (p *PgSQL) StoreSales(ctx context.Context, sales ...domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	rows := make([]PgSale, len(sales))
	for i := range rows {
		rows[i].FromDomain(sales[i])
	}

	if _, err := p.Builder.Insert(salesTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store sales into pg: %w", err)
	}

	return nil
}

// SalesByCategory aggregates sold units and revenue per catalog category for
// sales since the given time. Sales for unknown SKUs land in the empty
// category.
func (p *PgSQL) SalesByCategory(ctx context.Context, since time.Time) ([]domain.CategorySales, error) {
	type row struct {
		Category string  `db:"category"`
		Units    int     `db:"units"`
		Revenue  float64 `db:"revenue"`
	}

	var rows []row
	if err := p.Builder.From(goqu.T(salesTable).As("s")).
		LeftJoin(
			goqu.T(skusTable).As("k"),
			goqu.On(goqu.I("k.code").Eq(goqu.I("s.sku_code"))),
		).
		Select(
			goqu.COALESCE(goqu.I("k.category"), "").As("category"),
			goqu.SUM(goqu.I("s.quantity")).As("units"),
			goqu.SUM(goqu.L("s.sold_cost * s.quantity")).As("revenue"),
		).
		Where(goqu.I("s.sold_at").Gte(since)).
		GroupBy(goqu.COALESCE(goqu.I("k.category"), "")).
		Order(goqu.I("revenue").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get sales by category from pg: %w", err)
	}

	out := make([]domain.CategorySales, len(rows))
	for i, r := range rows {
		out[i] = domain.CategorySales{Category: r.Category, Units: r.Units, Revenue: r.Revenue}
	}

	return out, nil
}
