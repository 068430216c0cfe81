package grid

import (
	"image"

	"sig-tracer/pkg/colorutil"
)

// Raster renders the grid colors as rows of packed RGBA values.
func (g *Grid) Raster() [][]uint32 {
	return g.render(false)
}

// Overlay is Raster with each pixel's DebugColor, when set, in place of its
// color.
func (g *Grid) Overlay() [][]uint32 {
	return g.render(true)
}

func (g *Grid) render(debug bool) [][]uint32 {
	rows := make([][]uint32, g.Height)
	for y := range rows {
		row := make([]uint32, g.Width)
		for x := range row {
			p := &g.pixels[y*g.Width+x]
			c := p.Color
			if debug && p.DebugColor != Clear {
				c = p.DebugColor
			}
			row[x] = uint32(c)
		}
		rows[y] = row
	}
	return rows
}

// RasterImage writes packed rows into an RGBA image byte for byte, so the
// original values can be read back from Pix unchanged.
func RasterImage(rows [][]uint32) *image.RGBA {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		for x, v := range row {
			c := colorutil.Unpack(v)
			o := img.PixOffset(x, y)
			img.Pix[o+0] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = c.A
		}
	}
	return img
}
