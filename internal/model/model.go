package model

import (
	"strings"

	"github.com/google/uuid"
)

// Unit is the measurement system a workpiece is entered in.
type Unit string

const (
	UnitMetric   Unit = "metric"   // millimeters
	UnitImperial Unit = "imperial" // inches
)

func (u Unit) String() string {
	if u == UnitImperial {
		return "imperial"
	}
	return "metric"
}

// Symbol returns the linear unit abbreviation used for display.
func (u Unit) Symbol() string {
	if u == UnitImperial {
		return "in"
	}
	return "mm"
}

// ParseUnit converts a user supplied unit name into a Unit.
// It returns false when the name is not recognized.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric", "mm", "millimeter", "millimeters":
		return UnitMetric, true
	case "imperial", "in", "inch", "inches":
		return UnitImperial, true
	default:
		return UnitMetric, false
	}
}

// Workpiece describes the single rectangular part to be laid out on a surface.
type Workpiece struct {
	Length          float64 `json:"length"`
	Width           float64 `json:"width"`
	Quantity        int     `json:"quantity"`
	Margin          float64 `json:"margin"` // spacing between adjacent parts
	RotationAllowed bool    `json:"rotation_allowed"`
	Unit            Unit    `json:"unit"`
}

// Area returns the footprint of a single part in the workpiece's own unit.
func (w Workpiece) Area() float64 {
	return w.Length * w.Width
}

// WorkpieceInput is a partially filled workpiece as received from a form or
// command line before every field is known. Nil fields are missing.
type WorkpieceInput struct {
	Length          *float64 `json:"length,omitempty"`
	Width           *float64 `json:"width,omitempty"`
	Quantity        *int     `json:"quantity,omitempty"`
	Margin          *float64 `json:"margin,omitempty"`
	RotationAllowed bool     `json:"rotation_allowed"`
	Unit            Unit     `json:"unit"`
}

// Input returns the workpiece as a fully populated WorkpieceInput.
func (w Workpiece) Input() WorkpieceInput {
	l, wd, q, m := w.Length, w.Width, w.Quantity, w.Margin
	return WorkpieceInput{
		Length:          &l,
		Width:           &wd,
		Quantity:        &q,
		Margin:          &m,
		RotationAllowed: w.RotationAllowed,
		Unit:            w.Unit,
	}
}

// SizeCategory is a coarse size class for a work surface, used for grouping
// and display only.
type SizeCategory string

const (
	CategorySmall  SizeCategory = "small"
	CategoryMedium SizeCategory = "medium"
	CategoryLarge  SizeCategory = "large"
	CategoryXLarge SizeCategory = "xlarge"
)

// ParseCategory converts a category name into a SizeCategory.
func ParseCategory(s string) (SizeCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "s", "desktop":
		return CategorySmall, true
	case "medium", "m":
		return CategoryMedium, true
	case "large", "l":
		return CategoryLarge, true
	case "xlarge", "xl", "extra large", "industrial":
		return CategoryXLarge, true
	default:
		return "", false
	}
}

// Category area thresholds in square millimeters.
const (
	smallMaxArea  = 250000.0  // 0.25 m²
	mediumMaxArea = 1500000.0 // 1.5 m²
	largeMaxArea  = 4000000.0 // 4 m²
)

// CategoryForSize derives a size category from surface dimensions in mm.
func CategoryForSize(length, width float64) SizeCategory {
	area := length * width
	switch {
	case area < smallMaxArea:
		return CategorySmall
	case area < mediumMaxArea:
		return CategoryMedium
	case area < largeMaxArea:
		return CategoryLarge
	default:
		return CategoryXLarge
	}
}

// CandidateSurface is one work surface (machine bed or sheet size) from a catalog.
type CandidateSurface struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Length   float64      `json:"length"` // mm
	Width    float64      `json:"width"`  // mm
	Category SizeCategory `json:"category"`
}

func NewCandidateSurface(name string, length, width float64) CandidateSurface {
	return CandidateSurface{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Length:   length,
		Width:    width,
		Category: CategoryForSize(length, width),
	}
}

// Area returns the surface area in square mm.
func (s CandidateSurface) Area() float64 {
	return s.Length * s.Width
}

// Layout is the grid packing chosen for one workpiece on one surface.
type Layout struct {
	PartsPerRow        int     `json:"parts_per_row"`
	Rows               int     `json:"rows"`
	TotalParts         int     `json:"total_parts"`
	UsedArea           float64 `json:"used_area"`           // sq mm
	TotalArea          float64 `json:"total_area"`          // sq mm
	WastagePercent     float64 `json:"wastage_percent"`     // rounded to 2 decimals
	UtilizationPercent float64 `json:"utilization_percent"` // rounded to 2 decimals
	Rotated            bool    `json:"rotated"`             // parts placed turned 90°
	PartLength         float64 `json:"part_length"`         // placed extent along surface length (mm)
	PartWidth          float64 `json:"part_width"`          // placed extent along surface width (mm)
	Margin             float64 `json:"margin"`              // mm
}

// Position is the origin of one grid cell, measured from the surface corner in mm.
type Position struct {
	X float64 `json:"x"` // along surface length
	Y float64 `json:"y"` // along surface width
}

// Positions returns the origin of every placed part, row by row.
func (l Layout) Positions() []Position {
	positions := make([]Position, 0, l.TotalParts)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.PartsPerRow; c++ {
			positions = append(positions, Position{
				X: float64(c) * (l.PartLength + l.Margin),
				Y: float64(r) * (l.PartWidth + l.Margin),
			})
		}
	}
	return positions
}

// ScoreBreakdown holds the three weighted components of a match score.
type ScoreBreakdown struct {
	Utilization      float64 `json:"utilization"`       // 0-40
	QuantityCoverage float64 `json:"quantity_coverage"` // 0-30
	Wastage          float64 `json:"wastage"`           // 0-30
}

// Total returns the unrounded sum of the components.
func (b ScoreBreakdown) Total() float64 {
	return b.Utilization + b.QuantityCoverage + b.Wastage
}

// MatchResult is the evaluation of a single candidate surface.
type MatchResult struct {
	Surface         CandidateSurface `json:"surface"`
	Layout          Layout           `json:"layout"`
	MatchScore      int              `json:"match_score"`
	IsOptimal       bool             `json:"is_optimal"`
	Breakdown       ScoreBreakdown   `json:"breakdown"`
	Recommendations []string         `json:"recommendations"`
	Warnings        []string         `json:"warnings"`
}
