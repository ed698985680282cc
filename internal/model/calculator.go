package model

import (
	"fmt"
	"math"
)

// CostEstimate holds the material and cost figures for producing an order on
// one chosen surface.
type CostEstimate struct {
	SurfaceName        string   `json:"surface_name"`
	RequiredQuantity   int      `json:"required_quantity"`
	SheetsNeeded       int      `json:"sheets_needed"`
	PartsProduced      int      `json:"parts_produced"`       // SheetsNeeded * parts per sheet
	SpareParts         int      `json:"spare_parts"`          // PartsProduced - RequiredQuantity
	TotalMaterialArea  float64  `json:"total_material_area"`  // sq m
	UsedMaterialArea   float64  `json:"used_material_area"`   // sq m
	WastedMaterialArea float64  `json:"wasted_material_area"` // sq m
	CostPerSheet       *float64 `json:"cost_per_sheet,omitempty"`
	TotalEstimatedCost *float64 `json:"total_estimated_cost,omitempty"` // nil when no price is known
}

// CalculateCostEstimate computes how many sheets of the matched surface are
// needed for requiredQuantity parts and the material they consume.
// costPerSheet may be nil, in which case no monetary cost is produced.
func CalculateCostEstimate(match MatchResult, requiredQuantity int, costPerSheet *float64) (CostEstimate, error) {
	if requiredQuantity < 1 {
		return CostEstimate{}, &ValidationError{Errors: []string{"Quantity must be at least 1"}}
	}
	perSheet := match.Layout.TotalParts
	if perSheet <= 0 {
		return CostEstimate{}, fmt.Errorf("cannot estimate cost on %q: %w", match.Surface.Name, ErrZeroCapacityLayout)
	}

	sheets := int(math.Ceil(float64(requiredQuantity) / float64(perSheet)))

	sheetArea := match.Surface.Length * match.Surface.Width
	total := SquareMeters(float64(sheets) * sheetArea)
	used := SquareMeters(float64(sheets) * match.Layout.UsedArea)

	est := CostEstimate{
		SurfaceName:        match.Surface.Name,
		RequiredQuantity:   requiredQuantity,
		SheetsNeeded:       sheets,
		PartsProduced:      sheets * perSheet,
		SpareParts:         sheets*perSheet - requiredQuantity,
		TotalMaterialArea:  total,
		UsedMaterialArea:   used,
		WastedMaterialArea: total - used,
	}
	if costPerSheet != nil {
		price := *costPerSheet
		cost := price * float64(sheets)
		est.CostPerSheet = &price
		est.TotalEstimatedCost = &cost
	}
	return est, nil
}
