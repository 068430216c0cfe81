// Package colorutil converts between the 32-bit packed RGBA values used by
// pixel grids and the standard library color types.
package colorutil

import (
	"image/color"
)

// Comparison image colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Pack encodes c as 0xRRGGBBAA.
func Pack(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Unpack decodes a 0xRRGGBBAA value. The channels are returned verbatim, so
// Pack(Unpack(v)) == v for every v.
func Unpack(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// IsInk reports whether a sample is pure black with non-zero alpha.
func IsInk(r, g, b, a uint8) bool {
	return r == 0 && g == 0 && b == 0 && a > 0
}
