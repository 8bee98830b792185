package storage

import (
	"context"
	"time"

	"aurora/pkg/domain"
)

// CatalogStorage persists the retail catalog the inventory reports draw from.
type CatalogStorage interface {
	// UpsertSKUs inserts or refreshes catalog items keyed by SKU code.
	UpsertSKUs(ctx context.Context, skus ...domain.SKU) error
	// LowStockSKUs returns items at or below their reorder point, lowest stock
	// first, limited by limit (0 means no limit).
	LowStockSKUs(ctx context.Context, limit uint) ([]domain.SKU, error)
	// StoreSales inserts point-of-sale transaction lines.
	StoreSales(ctx context.Context, sales ...domain.Sale) error
	// SalesByCategory aggregates units and revenue per catalog category for
	// sales since the given time, highest revenue first.
	SalesByCategory(ctx context.Context, since time.Time) ([]domain.CategorySales, error)
}
