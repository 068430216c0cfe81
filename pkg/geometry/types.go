// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"image"
)

// RectInt represents a rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Bounds computes the smallest rectangle containing every point.
func Bounds(points []image.Point) RectInt {
	if len(points) == 0 {
		return RectInt{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	return RectInt{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}

// Adjacent reports whether a and b differ by at most one in each axis and
// are not the same point.
func Adjacent(a, b image.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if a == b {
		return false
	}
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
