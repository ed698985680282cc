package model

import (
	"fmt"
	"math"
)

// MMPerInch is the exact number of millimeters in one inch.
const MMPerInch = 25.4

// sqmmPerSquareFoot is the number of square millimeters in one square foot.
// 1 sq ft = 144 sq in = 144 * 645.16 sq mm = 92903.04 sq mm.
const sqmmPerSquareFoot = 92903.04

// sqmmPerSquareMeter converts square millimeters to square meters.
const sqmmPerSquareMeter = 1000000.0

// ToMillimeters converts a linear value in the given unit to millimeters.
func ToMillimeters(v float64, u Unit) float64 {
	if u == UnitImperial {
		return v * MMPerInch
	}
	return v
}

// FromMillimeters converts a millimeter value back into the given unit.
func FromMillimeters(mm float64, u Unit) float64 {
	if u == UnitImperial {
		return mm / MMPerInch
	}
	return mm
}

// SquareMeters converts an area in square millimeters to square meters.
func SquareMeters(sqmm float64) float64 {
	return sqmm / sqmmPerSquareMeter
}

// Normalize returns a copy of the workpiece with Length, Width and Margin in
// millimeters and Unit set to metric. Calling it on a metric workpiece is a no-op.
func (w Workpiece) Normalize() Workpiece {
	if w.Unit != UnitImperial {
		w.Unit = UnitMetric
		return w
	}
	return Workpiece{
		Length:          ToMillimeters(w.Length, w.Unit),
		Width:           ToMillimeters(w.Width, w.Unit),
		Quantity:        w.Quantity,
		Margin:          ToMillimeters(w.Margin, w.Unit),
		RotationAllowed: w.RotationAllowed,
		Unit:            UnitMetric,
	}
}

// FormatDimension renders a millimeter length in the requested display unit.
func FormatDimension(mm float64, u Unit) string {
	if u == UnitImperial {
		return fmt.Sprintf("%.2f in", FromMillimeters(mm, u))
	}
	return fmt.Sprintf("%.1f mm", mm)
}

// FormatSize renders a length x width pair in the requested display unit.
func FormatSize(length, width float64, u Unit) string {
	if u == UnitImperial {
		return fmt.Sprintf("%.2f x %.2f in", FromMillimeters(length, u), FromMillimeters(width, u))
	}
	return fmt.Sprintf("%.0f x %.0f mm", length, width)
}

// FormatArea renders a square millimeter area as m² (metric) or ft² (imperial).
func FormatArea(sqmm float64, u Unit) string {
	if u == UnitImperial {
		return fmt.Sprintf("%.2f ft²", sqmm/sqmmPerSquareFoot)
	}
	return fmt.Sprintf("%.3f m²", SquareMeters(sqmm))
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentages returns the wastage and utilization percentages for a used area
// on a surface. Each is rounded to two decimals independently.
func Percentages(usedArea, totalArea float64) (wastage, utilization float64) {
	if totalArea <= 0 {
		return 100, 0
	}
	wastage = round2(100 * (totalArea - usedArea) / totalArea)
	utilization = round2(100 * usedArea / totalArea)
	return wastage, utilization
}
