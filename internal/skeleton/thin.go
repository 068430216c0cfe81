// Package skeleton reduces ink strokes to single-pixel-wide paths.
package skeleton

import (
	"sig-tracer/internal/grid"
)

// Result summarizes a thinning run.
type Result struct {
	Iterations   int // thinning iterations, including the final one that changed nothing
	CornerPasses int // cleanup passes, including the final one that changed nothing
	Deleted      int
	Restored     int
}

// subiteration selects one half of a thinning iteration. The first half
// removes pixels from the south-east side of a stroke and marks them in the
// "bottom left" family, the second half removes from the north-west side
// as the "bottom right" family.
type subiteration int

const (
	bottomLeft subiteration = iota
	bottomRight
)

func (s subiteration) mark() grid.Status {
	if s == bottomLeft {
		return grid.MaybeDeleteBottomLeft
	}
	return grid.MaybeDeleteBottomRight
}

// Thin runs two-subiteration parallel thinning over the active pixels of g
// until a full iteration deletes nothing, then removes staircase corners
// left behind on diagonal runs. Deleted pixels turn white and get a red
// DebugColor; corner candidates that turned out to be essential are put
// back with a green one. Endpoints are never deleted. The active list is
// compacted to the surviving pixels.
func Thin(g *grid.Grid) Result {
	var res Result
	for {
		res.Iterations++
		changed := false
		for _, sub := range [2]subiteration{bottomLeft, bottomRight} {
			if del := thinPass(g, sub); del > 0 {
				res.Deleted += del
				changed = true
			}
		}
		retire(g)
		if !changed {
			break
		}
	}

	for {
		res.CornerPasses++
		del, rst := cornerPass(g)
		res.Deleted += del
		res.Restored += rst
		retire(g)
		if del == 0 {
			break
		}
	}
	return res
}

// thinPass marks every deletable pixel against the current state before
// committing any of them, so the outcome does not depend on visit order.
// An endpoint is never marked: its Guo-Hall neighbor count is below two.
func thinPass(g *grid.Grid, sub subiteration) (deleted int) {
	mark := sub.mark()

	var marked []int
	for _, i := range g.Active() {
		p := g.At(i)
		if !p.IsBlack() || !deletable(g, i, sub) {
			continue
		}
		p.Status = mark
		marked = append(marked, i)
	}

	for _, i := range marked {
		p := g.At(i)
		p.Status = grid.Deleted
		p.Color = grid.White
		p.DebugColor = grid.Red
	}
	return len(marked)
}

// deletable is the Guo-Hall test on the eight neighbors of i.
func deletable(g *grid.Grid, i int, sub subiteration) bool {
	p2 := g.BlackAt(i, grid.N)
	p3 := g.BlackAt(i, grid.NE)
	p4 := g.BlackAt(i, grid.E)
	p5 := g.BlackAt(i, grid.SE)
	p6 := g.BlackAt(i, grid.S)
	p7 := g.BlackAt(i, grid.SW)
	p8 := g.BlackAt(i, grid.W)
	p9 := g.BlackAt(i, grid.NW)

	c := b2i(!p2 && (p3 || p4)) + b2i(!p4 && (p5 || p6)) +
		b2i(!p6 && (p7 || p8)) + b2i(!p8 && (p9 || p2))
	if c != 1 {
		return false
	}

	n1 := b2i(p9 || p2) + b2i(p3 || p4) + b2i(p5 || p6) + b2i(p7 || p8)
	n2 := b2i(p2 || p3) + b2i(p4 || p5) + b2i(p6 || p7) + b2i(p8 || p9)
	n := min(n1, n2)
	if n < 2 || n > 3 {
		return false
	}

	var m bool
	if sub == bottomLeft {
		m = (p6 || p7 || !p9) && p8
	} else {
		m = (p2 || p3 || !p5) && p4
	}
	return !m
}

// cornerPass collects corner candidates against the current state, then
// commits them in raster order, re-checking each one first because an
// earlier commit in the same pass can make a later candidate essential.
// Such a candidate is held as MaybeRestoreLeft until the pass ends, then
// settles as RestoredLeft.
func cornerPass(g *grid.Grid) (deleted, restored int) {
	var marked []int
	for _, i := range g.Active() {
		if g.At(i).IsBlack() && isCorner(g, i) {
			g.At(i).Status = grid.MaybeDeleteBottomLeft
			marked = append(marked, i)
		}
	}

	for _, i := range marked {
		p := g.At(i)
		if !isCorner(g, i) {
			p.Status = grid.MaybeRestoreLeft
			continue
		}
		p.Status = grid.Deleted
		p.Color = grid.White
		p.DebugColor = grid.Red
		deleted++
	}

	for _, i := range marked {
		if p := g.At(i); p.Status == grid.MaybeRestoreLeft {
			p.Status = grid.RestoredLeft
			p.DebugColor = grid.Green
			restored++
		}
	}
	return deleted, restored
}

// isCorner reports whether i is a redundant elbow: it has at least three
// black neighbors, removing it keeps its neighborhood connected, and none
// of its black neighbors would drop to a single black neighbor.
func isCorner(g *grid.Grid, i int) bool {
	if g.BlackNeighbors(i) < 3 || connectivity(g, i) != 1 {
		return false
	}
	for _, j := range g.At(i).Neighbors() {
		if g.At(j).IsBlack() && g.BlackNeighbors(j) <= 2 {
			return false
		}
	}
	return true
}

// yokoiOrder lists the neighbors counter-clockwise from east.
var yokoiOrder = [8]grid.Direction{grid.E, grid.NE, grid.N, grid.NW, grid.W, grid.SW, grid.S, grid.SE}

// connectivity is the Yokoi 8-connectivity number of i.
func connectivity(g *grid.Grid, i int) int {
	var q [8]int
	for k, d := range yokoiOrder {
		q[k] = 1 - b2i(g.BlackAt(i, d))
	}
	n := 0
	for k := 0; k < 8; k += 2 {
		n += q[k] - q[k]*q[(k+1)%8]*q[(k+2)%8]
	}
	return n
}

// retire makes this iteration's deletions permanent and drops them from
// the active list.
func retire(g *grid.Grid) {
	for _, i := range g.Active() {
		if p := g.At(i); p.Status == grid.Deleted {
			p.Status = grid.PermanentlyDeleted
		}
	}
	g.Compact()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
