package grid

import (
	"image"
)

const noPixel = -1

// Pixel is one grid cell. Neighbor slots hold arena indices, never pointers,
// so the mutual references between neighbors form no ownership cycles.
type Pixel struct {
	Coord      image.Point
	Color      Color
	DebugColor Color // Clear when unset
	Status     Status

	slots     [8]int
	neighbors []int
}

// Slot returns the arena index linked in direction d.
func (p *Pixel) Slot(d Direction) (int, bool) {
	i := p.slots[d]
	return i, i != noPixel
}

// Neighbors returns the linked neighbor indices in link order. The slice
// is owned by the pixel.
func (p *Pixel) Neighbors() []int {
	return p.neighbors
}

// IsBlack reports whether the pixel is ink.
func (p *Pixel) IsBlack() bool {
	return p.Color == Black
}

// Grid is the pipeline state owned by a single parse: the pixel arena, which
// doubles as the coordinate map, and the active pixel list.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	Width  int
	Height int

	pixels []Pixel
	active []int
}

// New allocates a width x height grid with every pixel white and unlinked.
func New(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		pixels: make([]Pixel, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := &g.pixels[y*width+x]
			p.Coord = image.Point{X: x, Y: y}
			p.Color = White
			for d := range p.slots {
				p.slots[d] = noPixel
			}
		}
	}
	return g
}

// Len returns the number of pixel records.
func (g *Grid) Len() int {
	return len(g.pixels)
}

// Index resolves a coordinate to its arena index.
func (g *Grid) Index(pt image.Point) (int, bool) {
	if pt.X < 0 || pt.Y < 0 || pt.X >= g.Width || pt.Y >= g.Height {
		return noPixel, false
	}
	return pt.Y*g.Width + pt.X, true
}

// At returns the pixel at arena index i.
func (g *Grid) At(i int) *Pixel {
	return &g.pixels[i]
}

// Lookup returns the pixel at a coordinate.
func (g *Grid) Lookup(pt image.Point) (*Pixel, bool) {
	i, ok := g.Index(pt)
	if !ok {
		return nil, false
	}
	return &g.pixels[i], true
}

// Active returns the active pixel indices in raster order. The slice is
// owned by the grid.
func (g *Grid) Active() []int {
	return g.active
}

// Activate appends i to the active list.
func (g *Grid) Activate(i int) {
	g.active = append(g.active, i)
}

// Points returns the coordinates of the active pixels in list order.
func (g *Grid) Points() []image.Point {
	pts := make([]image.Point, 0, len(g.active))
	for _, i := range g.active {
		pts = append(pts, g.pixels[i].Coord)
	}
	return pts
}

// Compact drops every active pixel that is no longer black, keeping order.
func (g *Grid) Compact() {
	kept := g.active[:0]
	for _, i := range g.active {
		if g.pixels[i].IsBlack() {
			kept = append(kept, i)
		}
	}
	g.active = kept
}

// BlackNeighbors counts linked neighbors that are ink.
func (g *Grid) BlackNeighbors(i int) int {
	n := 0
	for _, j := range g.pixels[i].slots {
		if j != noPixel && g.pixels[j].IsBlack() {
			n++
		}
	}
	return n
}

// BlackAt reports whether the neighbor in direction d exists and is ink.
func (g *Grid) BlackAt(i int, d Direction) bool {
	j := g.pixels[i].slots[d]
	return j != noPixel && g.pixels[j].IsBlack()
}

// IsEndpoint reports whether exactly one neighbor is black.
func (g *Grid) IsEndpoint(i int) bool {
	return g.BlackNeighbors(i) == 1
}

// CanBeStartPixel reports whether i may open a traced path: an endpoint that
// has not been processed yet.
func (g *Grid) CanBeStartPixel(i int) bool {
	return g.pixels[i].Status != Processed && g.IsEndpoint(i)
}

// IsJunction reports whether three or more neighbors are black.
func (g *Grid) IsJunction(i int) bool {
	return g.BlackNeighbors(i) >= 3
}

// HasProcessedNeighbor returns the first linked neighbor, in link order,
// whose status is Processed.
func (g *Grid) HasProcessedNeighbor(i int) (int, bool) {
	for _, j := range g.pixels[i].neighbors {
		if g.pixels[j].Status == Processed {
			return j, true
		}
	}
	return noPixel, false
}
