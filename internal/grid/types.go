// Package grid holds the per-parse pixel arena: every coordinate of the
// image gets one Pixel record, ink pixels are linked into an 8-neighbor
// graph, and later phases mutate color and status in place.
package grid

import (
	"image"

	"sig-tracer/pkg/colorutil"
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// Palette. Only Clear, White and Black take part in the algorithm; the rest
// are debug colors.
const (
	Clear         Color = 0x00000000
	White         Color = 0xFFFFFFFF
	Black         Color = 0x000000FF
	Red           Color = 0xFF0000FF
	Green         Color = 0x00FF00FF
	Blue          Color = 0x0000FFFF
	Yellow        Color = 0xFFFF00FF
	Pink          Color = 0xFF00FFFF
	Teal          Color = 0x00FFFFFF
	Orange        Color = 0xFFA500FF
	Purple        Color = 0x6A0DADFF
	LightGreen    Color = 0x90EE90FF
	Gold          Color = 0xDAA520FF
	Brown         Color = 0x964B00FF
	Gray          Color = 0x808080FF
	GrayBlue      Color = 0x43A6C6FF
	DarkBlue      Color = 0x000C66FF
	DarkGreen     Color = 0x024B30FF
	KnowInkYellow Color = 0xC5D428FF
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return colorutil.Unpack(uint32(c)).RGBA()
}

// Status tracks a pixel through thinning and tracing.
type Status int

const (
	Normal Status = iota
	Processed
	Deleted
	PermanentlyDeleted
	MaybeDeleteBottomLeft
	MaybeDeleteBottomRight
	RestoredLeft
	RestoredRight
	MaybeRestoreLeft
	MaybeRestoreRight
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Processed:
		return "Processed"
	case Deleted:
		return "Deleted"
	case PermanentlyDeleted:
		return "PermanentlyDeleted"
	case MaybeDeleteBottomLeft:
		return "MaybeDeleteBottomLeft"
	case MaybeDeleteBottomRight:
		return "MaybeDeleteBottomRight"
	case RestoredLeft:
		return "RestoredLeft"
	case RestoredRight:
		return "RestoredRight"
	case MaybeRestoreLeft:
		return "MaybeRestoreLeft"
	case MaybeRestoreRight:
		return "MaybeRestoreRight"
	default:
		return "Unknown"
	}
}

// Direction is one of the eight compass neighbor slots.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Directions lists the slots in compass order.
var Directions = [8]Direction{N, NE, E, SE, S, SW, W, NW}

var offsets = [8]image.Point{
	N:  {0, -1},
	NE: {1, -1},
	E:  {1, 0},
	SE: {1, 1},
	S:  {0, 1},
	SW: {-1, 1},
	W:  {-1, 0},
	NW: {-1, -1},
}

// Offset returns the coordinate delta of the slot. Image y grows downward.
func (d Direction) Offset() image.Point {
	return offsets[d]
}

// Opposite returns the slot pointing back.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

func (d Direction) String() string {
	return [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[d]
}

// DirectionOf returns the slot from a to b, or false if b is not one of the
// eight grid-adjacent coordinates of a.
func DirectionOf(a, b image.Point) (Direction, bool) {
	delta := b.Sub(a)
	for _, d := range Directions {
		if offsets[d] == delta {
			return d, true
		}
	}
	return 0, false
}
