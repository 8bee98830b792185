// Package report renders markdown summaries of trend forecasts and inventory
// health and writes them to the configured output directory.
package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"aurora/internal/config"
	"aurora/pkg/domain"
	"aurora/pkg/storage"
)

// Options configure where reports are written and how much detail they carry.
type Options struct {
	// OutputDir is the directory rendered reports are written into. It is
	// created on demand.
	OutputDir string
	// LowStockLimit caps the number of rows in the low stock table.
	LowStockLimit uint
	// SalesWindow is how far back sales are aggregated for the inventory report.
	SalesWindow time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OutputDir:     cfg.Report.OutputDir,
		LowStockLimit: cfg.Report.LowStockLimit,
		SalesWindow:   cfg.Forecast.Lookback,
	}
}

// Generator builds reports from stored trends and catalog data.
type Generator struct {
	options Options
	storage storage.Storage
}

// New creates a report Generator backed by the provided storage.
func New(storage storage.Storage, options Options) *Generator {
	return &Generator{
		options: options,
		storage: storage,
	}
}

type trendReportData struct {
	GeneratedAt time.Time
	Trends      []domain.Trend
}

type inventoryReportData struct {
	GeneratedAt time.Time
	LowStock    []domain.SKU
	Categories  []domain.CategorySales
}

// TrendReport renders the latest trend per signal into a markdown report and
// returns the path of the written file.
func (g *Generator) TrendReport(ctx context.Context) (string, error) {
	trends, err := g.storage.LatestTrends(ctx, 0)
	if err != nil {
		return "", fmt.Errorf("could not get latest trends: %w", err)
	}

	return g.write("trend_report", trendTemplate, trendReportData{
		GeneratedAt: time.Now().UTC(),
		Trends:      trends,
	})
}

// InventoryReport renders low stock items and per-category sales into a
// markdown report and returns the path of the written file.
func (g *Generator) InventoryReport(ctx context.Context) (string, error) {
	lowStock, err := g.storage.LowStockSKUs(ctx, g.options.LowStockLimit)
	if err != nil {
		return "", fmt.Errorf("could not get low stock skus: %w", err)
	}

	since := time.Now().UTC().Add(-g.options.SalesWindow)
	categories, err := g.storage.SalesByCategory(ctx, since)
	if err != nil {
		return "", fmt.Errorf("could not get sales by category: %w", err)
	}

	return g.write("inventory_report", inventoryTemplate, inventoryReportData{
		GeneratedAt: time.Now().UTC(),
		LowStock:    lowStock,
		Categories:  categories,
	})
}

// write renders tpl with data and stores the result under a timestamped name.
func (g *Generator) write(prefix string, tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("could not render %s: %w", prefix, err)
	}

	if err := os.MkdirAll(g.options.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create output directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.md", prefix, time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(g.options.OutputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("could not write %s: %w", prefix, err)
	}

	return path, nil
}
