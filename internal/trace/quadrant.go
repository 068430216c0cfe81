package trace

import (
	"sort"

	"sig-tracer/internal/grid"
	"sig-tracer/pkg/geometry"
)

// MapQuadrants tags every vector with the quadrant of its start pixel in a
// width x height image and returns the vectors ordered by quadrant, keeping
// discovery order within a quadrant. The input slice is not modified.
func MapQuadrants(vectors []*Vector, width, height int) []*Vector {
	out := make([]*Vector, len(vectors))
	copy(out, vectors)
	for _, v := range out {
		v.Quadrant = geometry.QuadrantOf(v.Start(), width, height)
		v.Processed = true
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quadrant < out[j].Quadrant
	})
	return out
}

var quadrantColors = [4]grid.Color{
	geometry.TopLeft:     grid.Blue,
	geometry.TopRight:    grid.Orange,
	geometry.BottomLeft:  grid.DarkGreen,
	geometry.BottomRight: grid.Gold,
}

// QuadrantColor returns the debug color used for vectors in q.
func QuadrantColor(q geometry.Quadrant) grid.Color {
	return quadrantColors[q&3]
}

// Paint sets the DebugColor of every traced pixel by the quadrant of its
// vector. Lone pixels are painted purple.
func Paint(g *grid.Grid, vectors []*Vector) {
	for _, v := range vectors {
		c := QuadrantColor(v.Quadrant)
		if v.Isolated {
			c = grid.Purple
		}
		for _, pt := range v.Path {
			if p, ok := g.Lookup(pt); ok {
				p.DebugColor = c
			}
		}
	}
}
