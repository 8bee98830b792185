package postgres_test

import (
	"context"
	"testing"
	"time"

	"aurora/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertSKUs_InsertAndUpdate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	sku := domain.SKU{
		Code:         "DRS-001",
		Name:         "Linen Dress",
		Brand:        "Acme",
		Category:     "dresses",
		Price:        79.90,
		Stock:        20,
		ReorderPoint: 10,
		Supplier:     "Acme Textiles",
	}
	require.NoError(t, pg.UpsertSKUs(ctx, sku))

	// second upsert with the same code refreshes the row
	sku.Stock = 5
	sku.Price = 69.90
	require.NoError(t, pg.UpsertSKUs(ctx, sku))

	lowStock, err := pg.LowStockSKUs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
	require.Equal(t, "DRS-001", lowStock[0].Code)
	require.Equal(t, 5, lowStock[0].Stock)
	require.InDelta(t, 69.90, lowStock[0].Price, 1e-9)
}

func TestPgSQL_LowStockSKUs_OrderAndLimit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.UpsertSKUs(ctx,
		domain.SKU{Code: "A-1", Name: "A", Stock: 8, ReorderPoint: 10},
		domain.SKU{Code: "B-1", Name: "B", Stock: 2, ReorderPoint: 10},
		domain.SKU{Code: "C-1", Name: "C", Stock: 50, ReorderPoint: 10},
	))

	lowStock, err := pg.LowStockSKUs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, lowStock, 2)
	require.Equal(t, "B-1", lowStock[0].Code, "lowest stock first")
	require.Equal(t, "A-1", lowStock[1].Code)

	limited, err := pg.LowStockSKUs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, "B-1", limited[0].Code)
}

func TestPgSQL_SalesByCategory(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, pg.UpsertSKUs(ctx,
		domain.SKU{Code: "DRS-001", Name: "Linen Dress", Category: "dresses"},
		domain.SKU{Code: "TOP-001", Name: "Crochet Top", Category: "tops"},
	))
	require.NoError(t, pg.StoreSales(ctx,
		domain.Sale{TransactionID: "t1", SKUCode: "DRS-001", StoreID: "s1", Quantity: 2, SoldCost: 100, SoldAt: now},
		domain.Sale{TransactionID: "t2", SKUCode: "DRS-001", StoreID: "s1", Quantity: 1, SoldCost: 100, SoldAt: now},
		domain.Sale{TransactionID: "t3", SKUCode: "TOP-001", StoreID: "s2", Quantity: 4, SoldCost: 25, SoldAt: now},
		// outside the window, must be excluded
		domain.Sale{TransactionID: "t4", SKUCode: "TOP-001", StoreID: "s2", Quantity: 10, SoldCost: 25, SoldAt: now.AddDate(-1, 0, 0)},
	))

	categories, err := pg.SalesByCategory(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// highest revenue first: dresses 3*100=300, tops 4*25=100
	require.Equal(t, "dresses", categories[0].Category)
	require.Equal(t, 3, categories[0].Units)
	require.InDelta(t, 300.0, categories[0].Revenue, 1e-9)
	require.Equal(t, "tops", categories[1].Category)
	require.Equal(t, 4, categories[1].Units)
	require.InDelta(t, 100.0, categories[1].Revenue, 1e-9)
}

func TestPgSQL_SalesByCategory_UnknownSKU(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, pg.StoreSales(ctx,
		domain.Sale{TransactionID: "t1", SKUCode: "GHOST-1", Quantity: 1, SoldCost: 10, SoldAt: now},
	))

	categories, err := pg.SalesByCategory(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "", categories[0].Category, "sales for unknown SKUs land in the empty category")
}
