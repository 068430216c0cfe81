package trace

import (
	"sig-tracer/internal/grid"
)

// walkOrder is the neighbor preference when a walk can continue in more
// than one direction: edges before corners.
var walkOrder = [8]grid.Direction{grid.N, grid.E, grid.S, grid.W, grid.NE, grid.SE, grid.SW, grid.NW}

type tracer struct {
	g       *grid.Grid
	vectors []*Vector

	// current first and last pixel of every vector, by arena index
	starts map[int]*Vector
	ends   map[int]*Vector
}

// Trace walks the active pixels of a thinned grid into vectors. Walks start
// at unprocessed endpoints in raster order. A walk that reaches a junction
// crosses the junction's cluster (the 8-connected run of junction pixels
// around it) and ends there; those pixels belong to that vector. Each
// branch leaving the cluster is then traced as its own vector before the
// next endpoint is considered. Pixels not reachable from any endpoint,
// such as closed loops and lone pixels, are traced last, again in raster
// order. Every active pixel ends up in exactly one vector and is marked
// Processed.
//
// A branch that turns out to be a single pixel next to an existing vector's
// first or last pixel extends that vector instead. Only a pixel without any
// black neighbor becomes an Isolated one-pixel vector.
func Trace(g *grid.Grid) []*Vector {
	t := &tracer{
		g:      g,
		starts: make(map[int]*Vector),
		ends:   make(map[int]*Vector),
	}
	for _, i := range g.Active() {
		if g.At(i).IsBlack() && g.CanBeStartPixel(i) {
			t.run(i)
		}
	}
	for _, i := range g.Active() {
		if p := g.At(i); p.IsBlack() && p.Status != grid.Processed {
			t.run(i)
		}
	}
	return t.vectors
}

// run traces from start and then drains the branches it discovers.
func (t *tracer) run(start int) {
	var pending []int
	pending = t.walk(start, pending)
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]
		if t.g.At(next).Status == grid.Processed {
			continue
		}
		pending = t.walk(next, pending)
	}
}

// walk builds one vector from start and returns pending with any branch
// seeds appended.
func (t *tracer) walk(start int, pending []int) []int {
	g := t.g
	v := NewVector(g.At(start).Coord)
	g.At(start).Status = grid.Processed

	cur := start
	for {
		next := t.unprocessed(cur)
		if len(next) == 0 {
			break
		}
		if cur != start && g.IsJunction(cur) {
			cur, pending = t.cross(v, cur, pending)
			break
		}
		if cur == start && len(next) > 1 {
			next = t.armsFirst(next)
			pending = append(pending, next[1:]...)
		}
		cur = next[0]
		g.At(cur).Status = grid.Processed
		v.Append(g.At(cur).Coord)
	}

	if v.Len() == 1 && t.attach(start) {
		return pending
	}
	v.SetEnd(g.At(cur).Coord)
	v.Isolated = g.BlackNeighbors(start) == 0
	t.vectors = append(t.vectors, v)
	t.starts[start] = v
	t.ends[cur] = v
	return pending
}

// cross continues v from junction pixel at through the interior of its
// cluster. Cluster pixels with a black neighbor outside the cluster are
// exits and stay unprocessed, so each one opens its own branch. Every pixel
// v claims here seeds its remaining unprocessed neighbors. cross returns the
// last pixel of v.
func (t *tracer) cross(v *Vector, at int, pending []int) (int, []int) {
	g := t.g
	in := t.cluster(at)
	exit := func(i int) bool {
		for _, j := range t.unprocessed(i) {
			if !in[j] {
				return true
			}
		}
		return false
	}

	claimed := []int{at}
	cur := at
	for {
		step := -1
		for _, j := range t.unprocessed(cur) {
			if in[j] && !exit(j) {
				step = j
				break
			}
		}
		if step < 0 {
			break
		}
		cur = step
		g.At(cur).Status = grid.Processed
		v.Append(g.At(cur).Coord)
		claimed = append(claimed, cur)
	}

	for _, i := range claimed {
		pending = append(pending, t.unprocessed(i)...)
	}
	return cur, pending
}

// cluster returns the junction pixels reachable from at through unprocessed
// junction pixels, at included.
func (t *tracer) cluster(at int) map[int]bool {
	in := map[int]bool{at: true}
	queue := []int{at}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range t.unprocessed(i) {
			if !in[j] && t.g.IsJunction(j) {
				in[j] = true
				queue = append(queue, j)
			}
		}
	}
	return in
}

// armsFirst orders candidate steps so pixels outside a junction come first,
// keeping walk order otherwise.
func (t *tracer) armsFirst(next []int) []int {
	out := make([]int, 0, len(next))
	for _, j := range next {
		if !t.g.IsJunction(j) {
			out = append(out, j)
		}
	}
	for _, j := range next {
		if t.g.IsJunction(j) {
			out = append(out, j)
		}
	}
	return out
}

// attach adds the single pixel i to a vector whose last or first pixel is
// next to it. It reports false when no such vector exists.
func (t *tracer) attach(i int) bool {
	if _, ok := t.g.HasProcessedNeighbor(i); !ok {
		return false
	}
	pt := t.g.At(i).Coord
	around := t.black(i)
	for _, j := range around {
		if v, ok := t.ends[j]; ok {
			delete(t.ends, j)
			v.Append(pt)
			v.SetEnd(pt)
			t.ends[i] = v
			return true
		}
	}
	for _, j := range around {
		if v, ok := t.starts[j]; ok {
			delete(t.starts, j)
			v.Prepend(pt)
			t.starts[i] = v
			return true
		}
	}
	return false
}

// unprocessed returns the black, not yet processed neighbors of i in walk
// order.
func (t *tracer) unprocessed(i int) []int {
	var out []int
	for _, j := range t.black(i) {
		if t.g.At(j).Status != grid.Processed {
			out = append(out, j)
		}
	}
	return out
}

// black returns the black neighbors of i in walk order.
func (t *tracer) black(i int) []int {
	var out []int
	for _, d := range walkOrder {
		j, ok := t.g.At(i).Slot(d)
		if !ok {
			continue
		}
		if t.g.At(j).IsBlack() {
			out = append(out, j)
		}
	}
	return out
}
