// Package image provides the decoded bitmap descriptor consumed by the parser
// and the adapters that produce it from files and image.Image values.
package image

import (
	"errors"
	"fmt"
)

// ColorModel is the color space tag reported by the decoder.
type ColorModel int

const (
	ModelUnknown ColorModel = iota
	ModelRGB
	ModelMonochrome
	ModelCMYK
	ModelIndexed
)

func (m ColorModel) String() string {
	switch m {
	case ModelRGB:
		return "RGB"
	case ModelMonochrome:
		return "Monochrome"
	case ModelCMYK:
		return "CMYK"
	case ModelIndexed:
		return "Indexed"
	default:
		return "Unknown"
	}
}

// Bitmap describes a decoded raster: row-major samples, Stride bytes per row,
// BytesPerPixel bytes per sample group.
//
// Sample layout by BytesPerPixel:
//   - 4 or more: R, G, B, A (extra bytes ignored)
//   - 3: R, G, B with implicit opaque alpha
//   - 2: gray, alpha
//   - 1: gray with implicit opaque alpha
type Bitmap struct {
	Width         int
	Height        int
	Stride        int
	BytesPerPixel int
	Data          []byte
	Model         ColorModel
}

// Size returns the bitmap dimensions in pixels.
func (b *Bitmap) Size() (width, height int) {
	return b.Width, b.Height
}

// Readable verifies that every sample the parser will touch lies inside Data.
func (b *Bitmap) Readable() error {
	if b == nil || b.Data == nil {
		return errors.New("no pixel data")
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("negative dimensions %dx%d", b.Width, b.Height)
	}
	if b.BytesPerPixel < 1 {
		return fmt.Errorf("invalid bytes per pixel %d", b.BytesPerPixel)
	}
	if b.Width == 0 || b.Height == 0 {
		return nil
	}

	// Divide before multiplying so absurd dimensions cannot overflow.
	n := len(b.Data)
	if b.Width > n/b.BytesPerPixel {
		return fmt.Errorf("buffer holds %d bytes, less than one row of %d pixels", n, b.Width)
	}
	row := b.Width * b.BytesPerPixel
	if b.Stride < row {
		return fmt.Errorf("stride %d shorter than row of %d pixels", b.Stride, b.Width)
	}
	if b.Height-1 > (n-row)/b.Stride {
		return fmt.Errorf("buffer holds %d bytes, too few for %d rows of stride %d", n, b.Height, b.Stride)
	}
	return nil
}

// RGBA returns the sample at (x, y) expanded to four 8-bit channels.
// The caller must have checked Readable.
func (b *Bitmap) RGBA(x, y int) (r, g, bl, a uint8) {
	off := y*b.Stride + x*b.BytesPerPixel
	d := b.Data
	switch {
	case b.BytesPerPixel >= 4:
		return d[off], d[off+1], d[off+2], d[off+3]
	case b.BytesPerPixel == 3:
		return d[off], d[off+1], d[off+2], 0xFF
	case b.BytesPerPixel == 2:
		v := d[off]
		return v, v, v, d[off+1]
	default:
		v := d[off]
		return v, v, v, 0xFF
	}
}
