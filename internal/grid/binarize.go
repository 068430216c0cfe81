package grid

import "sig-tracer/pkg/colorutil"

// Source is a readable raster of RGBA samples.
type Source interface {
	Size() (width, height int)
	RGBA(x, y int) (r, g, b, a uint8)
}

// Binarize creates a pixel record for every coordinate of src. A sample is
// black iff r = g = b = 0 and a > 0; everything else is white. Black pixels
// are appended to the active list in raster order.
func Binarize(src Source) *Grid {
	width, height := src.Size()
	g := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if colorutil.IsInk(src.RGBA(x, y)) {
				g.pixels[i].Color = Black
				g.Activate(i)
			}
		}
	}
	return g
}
