package engine

import (
	"math"

	"github.com/piwi3910/BedMatch/internal/model"
)

// orientation is one way of placing the workpiece on the surface.
type orientation struct {
	rotated    bool
	partLength float64 // extent along the surface length
	partWidth  float64 // extent along the surface width
}

// CalculateLayout returns the best uniform grid packing of the workpiece on
// the surface. The workpiece must already be normalized to millimeters.
//
// The unrotated orientation is evaluated first. When rotation is allowed the
// rotated orientation replaces it only if it covers strictly more area.
func CalculateLayout(w model.Workpiece, s model.CandidateSurface) model.Layout {
	best := gridLayout(w, s, orientation{partLength: w.Length, partWidth: w.Width})
	if !w.RotationAllowed {
		return best
	}

	rotated := gridLayout(w, s, orientation{rotated: true, partLength: w.Width, partWidth: w.Length})
	if rotated.UsedArea > best.UsedArea {
		return rotated
	}
	return best
}

// gridLayout packs the surface with identical cells in a single orientation.
// Margin is only needed between parts, so each axis gets one extra margin of
// room: n parts need n*extent + (n-1)*margin <= side.
func gridLayout(w model.Workpiece, s model.CandidateSurface, o orientation) model.Layout {
	perRow := gridCount(s.Length, o.partLength, w.Margin)
	rows := gridCount(s.Width, o.partWidth, w.Margin)
	total := perRow * rows

	used := float64(total) * w.Length * w.Width
	area := s.Length * s.Width
	wastage, utilization := model.Percentages(used, area)

	return model.Layout{
		PartsPerRow:        perRow,
		Rows:               rows,
		TotalParts:         total,
		UsedArea:           used,
		TotalArea:          area,
		WastagePercent:     wastage,
		UtilizationPercent: utilization,
		Rotated:            o.rotated,
		PartLength:         o.partLength,
		PartWidth:          o.partWidth,
		Margin:             w.Margin,
	}
}

// gridCount returns how many parts of the given extent fit along a side.
func gridCount(side, extent, margin float64) int {
	cell := extent + margin
	if side <= 0 || extent <= 0 || cell <= 0 {
		return 0
	}
	n := int(math.Floor((side + margin) / cell))
	if n < 0 {
		return 0
	}
	return n
}
