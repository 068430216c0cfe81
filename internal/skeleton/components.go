package skeleton

import (
	"image"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"sig-tracer/internal/grid"
)

// Components counts the 8-connected ink strokes among the active pixels of
// g. Thinning must leave this number unchanged.
func Components(g *grid.Grid) int {
	ug := simple.NewUndirectedGraph()
	for _, i := range g.Active() {
		if !g.At(i).IsBlack() {
			continue
		}
		if ug.Node(int64(i)) == nil {
			ug.AddNode(simple.Node(i))
		}
		for _, j := range g.At(i).Neighbors() {
			if j > i && g.At(j).IsBlack() {
				ug.SetEdge(ug.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}
	return len(topo.ConnectedComponents(ug))
}

// Agreement compares two skeletons pixel by pixel.
type Agreement struct {
	Ours      int
	Reference int
	Shared    int
	Jaccard   float64 // shared over union, 1 when both are empty
}

// Compare measures the overlap between two sets of skeleton pixels.
func Compare(ours, reference []image.Point) Agreement {
	set := make(map[image.Point]struct{}, len(ours))
	for _, p := range ours {
		set[p] = struct{}{}
	}
	a := Agreement{Ours: len(set)}

	seen := make(map[image.Point]struct{}, len(reference))
	for _, p := range reference {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, ok := set[p]; ok {
			a.Shared++
		}
	}
	a.Reference = len(seen)

	union := a.Ours + a.Reference - a.Shared
	if union == 0 {
		a.Jaccard = 1
	} else {
		a.Jaccard = float64(a.Shared) / float64(union)
	}
	return a
}
