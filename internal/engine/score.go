package engine

import (
	"math"

	"github.com/piwi3910/BedMatch/internal/model"
)

// Score weights and caps.
const (
	maxUtilizationPoints = 40.0
	utilizationWeight    = 0.4

	fullCoveragePoints   = 30.0
	excessTolerance      = 0.3  // spare capacity below this ratio is free
	excessPenaltyWeight  = 20.0 // points lost per unit of excess ratio
	maxExcessPenalty     = 15.0
	partialCoverageScale = 15.0 // single sheet short of the order scores at most half

	maxWastagePoints = 30.0
	wastageWeight    = 0.5

	optimalMinScore       = 70
	optimalMinUtilization = 60.0
)

// ScoreLayout splits the suitability of a layout for an order of
// requiredQuantity parts into its three weighted components.
func ScoreLayout(l model.Layout, requiredQuantity int) model.ScoreBreakdown {
	return model.ScoreBreakdown{
		Utilization:      utilizationPoints(l.UtilizationPercent),
		QuantityCoverage: coveragePoints(l.TotalParts, requiredQuantity),
		Wastage:          wastagePoints(l.WastagePercent),
	}
}

// MatchScore rounds a breakdown to the final 0-100 score.
func MatchScore(b model.ScoreBreakdown) int {
	score := int(math.Round(b.Total()))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// IsOptimal reports whether a scored layout is good enough to flag: a high
// score alone is not sufficient if one sheet cannot hold the whole order.
func IsOptimal(score int, l model.Layout, requiredQuantity int) bool {
	return score >= optimalMinScore &&
		l.TotalParts >= requiredQuantity &&
		l.UtilizationPercent >= optimalMinUtilization
}

func utilizationPoints(utilization float64) float64 {
	return math.Min(utilization*utilizationWeight, maxUtilizationPoints)
}

func coveragePoints(totalParts, requiredQuantity int) float64 {
	if requiredQuantity < 1 {
		requiredQuantity = 1
	}
	if totalParts >= requiredQuantity {
		excess := float64(totalParts-requiredQuantity) / float64(requiredQuantity)
		if excess < excessTolerance {
			return fullCoveragePoints
		}
		return fullCoveragePoints - math.Min(excess*excessPenaltyWeight, maxExcessPenalty)
	}
	return float64(totalParts) / float64(requiredQuantity) * partialCoverageScale
}

func wastagePoints(wastage float64) float64 {
	return math.Max(maxWastagePoints-wastage*wastageWeight, 0)
}
