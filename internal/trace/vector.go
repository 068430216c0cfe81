// Package trace walks a thinned ink skeleton into ordered pixel paths
// (vectors) and groups them by image quadrant.
package trace

import (
	"image"
	"math"

	"sig-tracer/pkg/geometry"
)

// Vector is one traced stroke. Its angle is derived from the start and end
// pixels and is recomputed whenever either is reassigned.
type Vector struct {
	Path      []image.Point
	Quadrant  geometry.Quadrant
	Processed bool // set once the vector has been assigned a quadrant
	Isolated  bool // a single pixel without black neighbors; Angle is NaN

	start, end image.Point
	angle      float64
}

// NewVector starts a vector at pt.
func NewVector(pt image.Point) *Vector {
	v := &Vector{Path: []image.Point{pt}}
	v.SetStart(pt)
	v.SetEnd(pt)
	return v
}

// Append extends the path by one pixel without moving the end.
func (v *Vector) Append(pt image.Point) {
	v.Path = append(v.Path, pt)
}

// Prepend puts pt in front of the path and makes it the start.
func (v *Vector) Prepend(pt image.Point) {
	v.Path = append([]image.Point{pt}, v.Path...)
	v.SetStart(pt)
}

// Start returns the first pixel of the vector.
func (v *Vector) Start() image.Point { return v.start }

// End returns the last pixel of the vector.
func (v *Vector) End() image.Point { return v.end }

// SetStart reassigns the start pixel and recomputes the angle.
func (v *Vector) SetStart(pt image.Point) {
	v.start = pt
	v.angle = Angle(v.start, v.end)
}

// SetEnd reassigns the end pixel and recomputes the angle.
func (v *Vector) SetEnd(pt image.Point) {
	v.end = pt
	v.angle = Angle(v.start, v.end)
}

// Angle returns the derived angle in degrees.
func (v *Vector) Angle() float64 { return v.angle }

// Len returns the number of pixels in the path.
func (v *Vector) Len() int { return len(v.Path) }

// Bounds returns the bounding box of the path.
func (v *Vector) Bounds() geometry.RectInt {
	return geometry.Bounds(v.Path)
}

// Angle computes the direction of the segment between a and b in degrees.
// The two points are ordered by x first. A segment going right measures
// against a negated run, so horizontal is 90 and a line falling to the
// lower right is below 90. When both points share x the run is zero: the
// result is 180 when the first point is above the second, 0 when below,
// and NaN when the points coincide.
func Angle(a, b image.Point) float64 {
	first, second := a, b
	if first.X > second.X {
		first, second = second, first
	}
	rise := float64(second.Y - first.Y)
	if second.X > first.X {
		return math.Atan(rise/float64(first.X-second.X))*180/math.Pi + 90
	}
	return math.Atan(rise/float64(second.X-first.X))*180/math.Pi + 90
}
