package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"aurora/pkg/domain"

	"github.com/google/uuid"
)

type PgSignalPoint struct {
	ID        int64     `db:"id" goqu:"skipinsert"`
	Signal    string    `db:"signal"`
	Ts        time.Time `db:"ts"`
	Count     float64   `db:"count"`
	Source    string    `db:"source"`
	Region    string    `db:"region"`
	Sentiment float64   `db:"sentiment"`
}

func (p *PgSignalPoint) ToDomain() domain.SignalPoint {
	return domain.SignalPoint{
		Timestamp: p.Ts,
		Signal:    p.Signal,
		Count:     p.Count,
		Source:    p.Source,
		Region:    p.Region,
		Sentiment: p.Sentiment,
	}
}

func (p *PgSignalPoint) FromDomain(point domain.SignalPoint) {
	*p = PgSignalPoint{
		Signal:    point.Signal,
		Ts:        point.Timestamp,
		Count:     point.Count,
		Source:    point.Source,
		Region:    point.Region,
		Sentiment: point.Sentiment,
	}
}

type PgTrend struct {
	ID         uuid.UUID       `db:"id"`
	Signal     string          `db:"signal"`
	Strength   float64         `db:"strength"`
	Confidence float64         `db:"confidence"`
	Phase      string          `db:"phase"`
	GrowthRate float64         `db:"growth_rate"`
	Sentiment  float64         `db:"sentiment"`
	Spikes     int             `db:"spikes"`
	Trajectory json.RawMessage `db:"trajectory"`
	Sources    json.RawMessage `db:"sources"`
	Regions    json.RawMessage `db:"regions"`
	CreatedAt  time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTrend) ToDomain() (*domain.Trend, error) {
	trend := domain.Trend{
		ID:         domain.TrendID(p.ID),
		Signal:     p.Signal,
		Strength:   p.Strength,
		Confidence: p.Confidence,
		Phase:      domain.TrendPhase(p.Phase),
		GrowthRate: p.GrowthRate,
		Sentiment:  p.Sentiment,
		Spikes:     p.Spikes,
		CreatedAt:  p.CreatedAt,
	}

	if err := json.Unmarshal(p.Trajectory, &trend.Trajectory); err != nil {
		return nil, fmt.Errorf("could not unmarshal trajectory: %w", err)
	}
	if err := json.Unmarshal(p.Sources, &trend.Sources); err != nil {
		return nil, fmt.Errorf("could not unmarshal sources: %w", err)
	}
	if err := json.Unmarshal(p.Regions, &trend.Regions); err != nil {
		return nil, fmt.Errorf("could not unmarshal regions: %w", err)
	}

	return &trend, nil
}

func (p *PgTrend) FromDomain(trend domain.Trend) error {
	trajectory, err := json.Marshal(trend.Trajectory)
	if err != nil {
		return fmt.Errorf("could not marshal trajectory: %w", err)
	}

	// normalize nil maps/slices so the jsonb columns never hold SQL NULL
	sources := trend.Sources
	if sources == nil {
		sources = map[string]int{}
	}
	sourcesRaw, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("could not marshal sources: %w", err)
	}

	regions := trend.Regions
	if regions == nil {
		regions = []string{}
	}
	regionsRaw, err := json.Marshal(regions)
	if err != nil {
		return fmt.Errorf("could not marshal regions: %w", err)
	}

	*p = PgTrend{
		ID:         uuid.UUID(trend.ID),
		Signal:     trend.Signal,
		Strength:   trend.Strength,
		Confidence: trend.Confidence,
		Phase:      string(trend.Phase),
		GrowthRate: trend.GrowthRate,
		Sentiment:  trend.Sentiment,
		Spikes:     trend.Spikes,
		Trajectory: trajectory,
		Sources:    sourcesRaw,
		Regions:    regionsRaw,
		CreatedAt:  trend.CreatedAt,
	}

	return nil
}

type PgSKU struct {
	Code         string    `db:"code"`
	Name         string    `db:"name"`
	Brand        string    `db:"brand"`
	Category     string    `db:"category"`
	Color        string    `db:"color"`
	Pattern      string    `db:"pattern"`
	Season       string    `db:"season"`
	Price        float64   `db:"price"`
	Stock        int       `db:"stock"`
	ReorderPoint int       `db:"reorder_point"`
	Supplier     string    `db:"supplier"`
	UpdatedAt    time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSKU) ToDomain() domain.SKU {
	return domain.SKU{
		Code:         p.Code,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		Color:        p.Color,
		Pattern:      p.Pattern,
		Season:       p.Season,
		Price:        p.Price,
		Stock:        p.Stock,
		ReorderPoint: p.ReorderPoint,
		Supplier:     p.Supplier,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgSKU) FromDomain(sku domain.SKU) {
	*p = PgSKU{
		Code:         sku.Code,
		Name:         sku.Name,
		Brand:        sku.Brand,
		Category:     sku.Category,
		Color:        sku.Color,
		Pattern:      sku.Pattern,
		Season:       sku.Season,
		Price:        sku.Price,
		Stock:        sku.Stock,
		ReorderPoint: sku.ReorderPoint,
		Supplier:     sku.Supplier,
	}
}

type PgSale struct {
	ID            int64     `db:"id" goqu:"skipinsert"`
	TransactionID string    `db:"transaction_id"`
	SKUCode       string    `db:"sku_code"`
	StoreID       string    `db:"store_id"`
	Quantity      int       `db:"quantity"`
	UnitCost      float64   `db:"unit_cost"`
	SoldCost      float64   `db:"sold_cost"`
	SoldAt        time.Time `db:"sold_at"`
}

func (p *PgSale) FromDomain(sale domain.Sale) {
	*p = PgSale{
		TransactionID: sale.TransactionID,
		SKUCode:       sale.SKUCode,
		StoreID:       sale.StoreID,
		Quantity:      sale.Quantity,
		UnitCost:      sale.UnitCost,
		SoldCost:      sale.SoldCost,
		SoldAt:        sale.SoldAt,
	}
}

func pgTrendsToDomain(trends []PgTrend) ([]domain.Trend, error) {
	out := make([]domain.Trend, 0, len(trends))
	for _, trend := range trends {
		d, err := trend.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
