package mesh

// NewGrid builds a width×height rectangular mesh with 4-neighbor
// adjacency. Cell ids run row-major: cell = y*width + x. Slots that
// would fall outside the rectangle hold the Boundary sentinel, so edge
// cells still carry four neighbor slots. Neighbor order is west, east,
// north, south.
func NewGrid(width, height int) *Graph {
	n := width * height
	g := &Graph{
		Offsets:   make([]int32, n+1),
		Neighbors: make([]int32, 0, n*4),
	}

	at := func(x, y int) int32 {
		if x < 0 || x >= width || y < 0 || y >= height {
			return Boundary
		}
		return int32(y*width + x)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := y*width + x
			g.Offsets[c] = int32(len(g.Neighbors))
			g.Neighbors = append(g.Neighbors,
				at(x-1, y), at(x+1, y), at(x, y-1), at(x, y+1))
		}
	}
	g.Offsets[n] = int32(len(g.Neighbors))
	return g
}
