package domain

import "time"

// SKU is a single catalog item. Field names follow the upstream catalog feed.
type SKU struct {
	// Code is the SKU identifier, e.g. "U-SK-M-CRE-FLR-COT-25W".
	Code string `json:"sku"`
	// Name is the product display name.
	Name string `json:"productName"`
	// Brand is the product brand.
	Brand string `json:"brand"`
	// Category is the product category, e.g. "Skirt".
	Category string `json:"category"`
	// Color and Pattern link catalog items to trend signals.
	Color   string `json:"color"`
	Pattern string `json:"pattern"`
	// Season is the seasonal classification.
	Season string `json:"season"`
	// Price is the unit price.
	Price float64 `json:"price"`
	// Stock is the current on-hand quantity.
	Stock int `json:"stock"`
	// ReorderPoint is the stock level below which the item counts as low stock.
	ReorderPoint int `json:"reorderPoint"`
	// Supplier is the supplier name.
	Supplier string `json:"supplier"`

	// UpdatedAt is when the record was last refreshed from the feed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// LowStock reports whether the SKU is at or below its reorder point.
func (s SKU) LowStock() bool { return s.Stock <= s.ReorderPoint }

// Sale is a single point-of-sale transaction line.
type Sale struct {
	// TransactionID is the POS transaction identifier.
	TransactionID string `json:"transactionId"`
	// SKUCode references the sold catalog item.
	SKUCode string `json:"skuId"`
	// StoreID identifies the store the sale happened in.
	StoreID string `json:"storeId"`
	// Quantity is the number of units sold.
	Quantity int `json:"quantitySold"`
	// UnitCost is the original cost per unit; SoldCost the realized price.
	UnitCost float64 `json:"originalCost"`
	SoldCost float64 `json:"soldCost"`
	// SoldAt is the transaction date.
	SoldAt time.Time `json:"date"`
}

// CategorySales aggregates sales figures for one catalog category.
type CategorySales struct {
	Category string  `json:"category"`
	Units    int     `json:"units"`
	Revenue  float64 `json:"revenue"`
}
