package forecast

import (
	"math"

	"aurora/pkg/domain"
)

// Composite score weights. These mirror the weighting the merchandising team
// settled on for ranking signals; tune with care since reports sort by them.
const (
	weightVolume    = 0.4
	weightGrowth    = 0.3
	weightSentiment = 0.2
	weightBreadth   = 0.1

	weightDataVolume    = 0.5
	weightConsistency   = 0.3
	weightIntervalWidth = 0.2
)

// clampScore bounds a score to [0,100].
func clampScore(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

// strengthScore combines current volume, forecasted growth, sentiment and
// breadth of adoption into a single [0,100] score.
func strengthScore(currentVolume, growthRate, sentiment float64, breadth int) float64 {
	return clampScore(weightVolume*currentVolume +
		weightGrowth*growthRate +
		weightSentiment*sentiment +
		weightBreadth*float64(breadth))
}

// confidenceScore rewards data volume and series consistency and penalizes
// wide forecast intervals.
func confidenceScore(dataVolume, consistency, intervalWidth float64) float64 {
	return clampScore(weightDataVolume*dataVolume +
		weightConsistency*consistency -
		weightIntervalWidth*intervalWidth)
}

// classifyPhase maps growth and strength into a lifecycle phase. Order
// matters: strong growth wins over raw strength.
func classifyPhase(growthRate, strength float64) domain.TrendPhase {
	switch {
	case growthRate > 10 && strength > 50:
		return domain.TrendPhaseGrowing
	case strength > 70:
		return domain.TrendPhasePeaking
	case growthRate < -10:
		return domain.TrendPhaseDeclining
	default:
		return domain.TrendPhaseEmerging
	}
}
