// Package render writes diagnostic images: phase rasters and a vector
// overlay colored by quadrant.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"sig-tracer/internal/grid"
	"sig-tracer/internal/trace"
	"sig-tracer/pkg/geometry"
)

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveRaster writes packed 0xRRGGBBAA rows as a PNG.
func SaveRaster(path string, rows [][]uint32) error {
	return WritePNG(path, grid.RasterImage(rows))
}

// OverlayOptions controls Overlay.
type OverlayOptions struct {
	Scale  int  // output pixels per image pixel
	Labels bool // print the vector count of each quadrant
}

// DefaultOverlayOptions returns a 4x overlay with labels.
func DefaultOverlayOptions() OverlayOptions {
	return OverlayOptions{Scale: 4, Labels: true}
}

// Overlay draws the vectors of a width x height image on white. Each vector
// is a polyline through its pixel centers in its quadrant's color, with a
// dot on the start pixel. Lone pixels are purple dots.
func Overlay(width, height int, vectors []*trace.Vector, opts OverlayOptions) (image.Image, error) {
	s := float64(max(opts.Scale, 1))
	dc := gg.NewContext(int(float64(width)*s), int(float64(height)*s))
	dc.SetColor(color.White)
	dc.Clear()

	// Quadrant split lines.
	dc.SetColor(grid.Gray)
	dc.SetLineWidth(1)
	dc.DrawLine(float64(width)*s/2, 0, float64(width)*s/2, float64(height)*s)
	dc.DrawLine(0, float64(height)*s/2, float64(width)*s, float64(height)*s/2)
	dc.Stroke()

	center := func(p image.Point) (float64, float64) {
		return (float64(p.X) + 0.5) * s, (float64(p.Y) + 0.5) * s
	}

	var counts [4]int
	for _, v := range vectors {
		counts[v.Quadrant&3]++
		if v.Isolated {
			dc.SetColor(grid.Purple)
			x, y := center(v.Start())
			dc.DrawCircle(x, y, s/2)
			dc.Fill()
			continue
		}

		dc.SetColor(trace.QuadrantColor(v.Quadrant))
		dc.SetLineWidth(max(1, s*0.6))
		for i, p := range v.Path {
			x, y := center(p)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()

		x, y := center(v.Start())
		dc.DrawCircle(x, y, s*0.6)
		dc.Fill()
	}

	if opts.Labels {
		face, err := labelFace(max(8, s*2.5))
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.Black)
		for q := geometry.TopLeft; q <= geometry.BottomRight; q++ {
			x, y := 4.0, 4.0
			if q == geometry.TopRight || q == geometry.BottomRight {
				x += float64(width) * s / 2
			}
			if q == geometry.BottomLeft || q == geometry.BottomRight {
				y += float64(height) * s / 2
			}
			dc.DrawStringAnchored(fmt.Sprintf("%s %d", q, counts[q]), x, y, 0, 1)
		}
	}

	return dc.Image(), nil
}

// SaveOverlay renders Overlay to a PNG file.
func SaveOverlay(path string, width, height int, vectors []*trace.Vector, opts OverlayOptions) error {
	img, err := Overlay(width, height, vectors, opts)
	if err != nil {
		return err
	}
	return WritePNG(path, img)
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
