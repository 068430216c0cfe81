package geometry

import "image"

// Quadrant identifies one quarter of an image split at half width and half
// height. Image y grows downward.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// QuadrantOf returns the quadrant of a width x height image containing p.
// A coordinate exactly on the split line (2x == width or 2y == height) falls
// into the right or bottom half.
func QuadrantOf(p image.Point, width, height int) Quadrant {
	q := TopLeft
	if 2*p.X >= width {
		q |= TopRight
	}
	if 2*p.Y >= height {
		q |= BottomLeft
	}
	return q
}
