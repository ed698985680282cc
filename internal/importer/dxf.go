package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// minExtent is the smallest footprint side, in drawing units, accepted as a
// real shape.
const minExtent = 0.01

// point is a 2D drawing coordinate.
type point struct {
	X, Y float64
}

// bounds is an axis-aligned bounding box that grows as points are added.
type bounds struct {
	min, max point
	empty    bool
}

func newBounds() bounds {
	return bounds{empty: true}
}

func (b *bounds) add(pts ...point) {
	for _, p := range pts {
		if b.empty {
			b.min, b.max, b.empty = p, p, false
			continue
		}
		b.min.X = math.Min(b.min.X, p.X)
		b.min.Y = math.Min(b.min.Y, p.Y)
		b.max.X = math.Max(b.max.X, p.X)
		b.max.Y = math.Max(b.max.Y, p.Y)
	}
}

func (b bounds) size() (float64, float64) {
	if b.empty {
		return 0, 0
	}
	return b.max.X - b.min.X, b.max.Y - b.min.Y
}

// FootprintResult holds the workpiece footprint read from a DXF drawing.
// Length is the extent along X and Width the extent along Y, in drawing units.
type FootprintResult struct {
	Length   float64
	Width    float64
	Shapes   int
	Errors   []string
	Warnings []string
}

// ImportFootprintDXF reads a DXF file and returns the bounding box of every
// supported shape (LWPOLYLINE, CIRCLE, LINE, ARC) as the workpiece footprint.
func ImportFootprintDXF(path string) FootprintResult {
	d, err := dxf.Open(path)
	if err != nil {
		return FootprintResult{Errors: []string{fmt.Sprintf("Cannot open DXF file: %v", err)}}
	}
	return footprintFromEntities(d.Entities())
}

func footprintFromEntities(entities []entity.Entity) FootprintResult {
	if len(entities) == 0 {
		return FootprintResult{Errors: []string{"DXF file contains no entities"}}
	}

	result := FootprintResult{}
	box := newBounds()

	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := lwPolylinePoints(e)
			if len(pts) < 2 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			box.add(pts...)
		case *entity.Circle:
			box.add(circlePoints(e)...)
		case *entity.Arc:
			box.add(arcPoints(e, 32)...)
		case *entity.Line:
			box.add(point{e.Start[0], e.Start[1]}, point{e.End[0], e.End[1]})
		default:
			skipped++
			continue
		}
		result.Shapes++
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Ignored %d unsupported entities", skipped))
	}
	if result.Shapes == 0 {
		result.Errors = append(result.Errors, "No supported shapes found in DXF file")
		return result
	}

	length, width := box.size()
	if length < minExtent || width < minExtent {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Degenerate footprint (%.2f x %.2f)", length, width))
		return result
	}

	result.Length = length
	result.Width = width
	return result
}

// lwPolylinePoints returns the vertices of a LWPOLYLINE. Bulge values on
// vertices produce interpolated arc points. The last vertex only arcs back to
// the first on a closed polyline.
func lwPolylinePoints(lw *entity.LwPolyline) []point {
	var pts []point
	n := len(lw.Vertices)
	for i := 0; i < n; i++ {
		v := lw.Vertices[i]
		current := point{v[0], v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) && (i < n-1 || lw.Closed) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) < 1e-9 || n < 2 {
			pts = append(pts, current)
			continue
		}
		next := lw.Vertices[(i+1)%n]
		arc := bulgeArcPoints(current, point{next[0], next[1]}, bulge, 32)
		// the next vertex is added on its own iteration
		pts = append(pts, arc[:len(arc)-1]...)
	}
	return pts
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 point, bulge float64, numSegments int) []point {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chord := math.Hypot(dx, dy)
	if chord < 1e-9 {
		return []point{p1, p2}
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	perpX := -dy / chord
	perpY := dx / chord
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	start := math.Atan2(p1.Y-cy, p1.X-cx)
	end := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		if end > start {
			end -= 2 * math.Pi
		}
	} else if end < start {
		end += 2 * math.Pi
	}

	pts := make([]point, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		a := start + float64(i)/float64(numSegments)*(end-start)
		pts = append(pts, point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	return pts
}

// circlePoints returns the four extreme points of a circle.
func circlePoints(c *entity.Circle) []point {
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	return []point{{cx - r, cy}, {cx + r, cy}, {cx, cy - r}, {cx, cy + r}}
}

// arcPoints converts a DXF ARC entity to a series of points along it.
func arcPoints(a *entity.Arc, numSegments int) []point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		angle := startRad + float64(i)/float64(numSegments)*(endRad-startRad)
		pts[i] = point{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return pts
}
