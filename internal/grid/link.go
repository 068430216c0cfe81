package grid

// Connect links a and b in both directions. It reports false when the two
// pixels are not grid-adjacent. Connecting an already linked pair is a no-op.
func (g *Grid) Connect(a, b int) bool {
	pa, pb := &g.pixels[a], &g.pixels[b]
	d, ok := DirectionOf(pa.Coord, pb.Coord)
	if !ok {
		return false
	}
	if pa.slots[d] != b {
		pa.slots[d] = b
		pa.neighbors = append(pa.neighbors, b)
	}
	back := d.Opposite()
	if pb.slots[back] != a {
		pb.slots[back] = a
		pb.neighbors = append(pb.neighbors, a)
	}
	return true
}

// Link builds the neighbor graph: every active pixel is connected to each
// of its up to eight in-bounds grid neighbors, black or white.
func Link(g *Grid) {
	for _, i := range g.active {
		c := g.pixels[i].Coord
		for _, d := range Directions {
			j, ok := g.Index(c.Add(d.Offset()))
			if !ok {
				continue
			}
			g.Connect(i, j)
		}
	}
}
