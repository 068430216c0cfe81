// Package gridtest builds small ink rasters from ASCII art for tests.
package gridtest

import (
	"image"
	"strings"

	"sig-tracer/internal/grid"
)

// Art is a grid.Source where '#' is opaque black ink and any other byte is
// opaque white.
type Art struct {
	rows []string
	w    int
}

// New builds an Art from rows of equal width.
func New(rows ...string) *Art {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	return &Art{rows: rows, w: w}
}

// FromPoints builds a width x height Art with ink at pts.
func FromPoints(width, height int, pts []image.Point) *Art {
	cells := make([][]byte, height)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", width))
	}
	for _, p := range pts {
		cells[p.Y][p.X] = '#'
	}
	rows := make([]string, height)
	for y := range cells {
		rows[y] = string(cells[y])
	}
	return New(rows...)
}

func (a *Art) Size() (int, int) {
	return a.w, len(a.rows)
}

func (a *Art) RGBA(x, y int) (r, g, b, al uint8) {
	if x < len(a.rows[y]) && a.rows[y][x] == '#' {
		return 0, 0, 0, 255
	}
	return 255, 255, 255, 255
}

// Linked runs binarization and neighbor linking over src.
func Linked(src grid.Source) *grid.Grid {
	g := grid.Binarize(src)
	grid.Link(g)
	return g
}

// Dump renders the black pixels of g as ASCII art.
func Dump(g *grid.Grid) string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p, _ := g.Lookup(image.Point{X: x, Y: y})
			if p.IsBlack() {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
