package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrendID uniquely identifies a forecasted trend.
// It wraps uuid.UUID to provide type safety at the domain layer.
type TrendID uuid.UUID

// TrendPhase describes where a trend sits in its lifecycle.
type TrendPhase string

const (
	// TrendPhaseEmerging indicates early, low-volume activity.
	TrendPhaseEmerging TrendPhase = "EMERGING"
	// TrendPhaseGrowing indicates strong forecasted growth.
	TrendPhaseGrowing TrendPhase = "GROWING"
	// TrendPhasePeaking indicates high strength with flattening growth.
	TrendPhasePeaking TrendPhase = "PEAKING"
	// TrendPhaseDeclining indicates forecasted contraction.
	TrendPhaseDeclining TrendPhase = "DECLINING"
)

// Trend is the output of one forecast pipeline run for a single signal.
type Trend struct {
	// ID is the unique identifier of the trend record.
	ID TrendID `json:"id"`
	// Signal is the underlying signal name this trend was derived from.
	Signal string `json:"signal"`

	// Strength is the composite trend strength score in [0,100].
	Strength float64 `json:"strength"`
	// Confidence is the prediction confidence score in [0,100].
	Confidence float64 `json:"confidence"`
	// Phase is the lifecycle classification derived from strength and growth.
	Phase TrendPhase `json:"phase"`
	// GrowthRate is the forecasted percentage change over the horizon.
	GrowthRate float64 `json:"growthRate"`
	// Sentiment is the mean sentiment over the observations, in [0,1].
	Sentiment float64 `json:"sentiment"`
	// Spikes is the number of spike buckets detected in the historical series.
	Spikes int `json:"spikes"`

	// Trajectory holds the forecasted weekly values for the horizon.
	Trajectory []float64 `json:"trajectory"`
	// Sources maps source name to how many observations it contributed.
	Sources map[string]int `json:"sources"`
	// Regions lists the markets the signal was observed in.
	Regions []string `json:"regions"`

	// CreatedAt is when the forecast run produced this record.
	CreatedAt time.Time `json:"createdAt"`
}
