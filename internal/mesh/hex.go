package mesh

// HexCoord is a position on a hex grid in axial coordinates. The third
// cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int
	R int
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// hexDirections defines the six neighbor offsets in axial coordinates.
var hexDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Distance returns the hex distance between two coordinates, the max of
// the three absolute cube-coordinate differences.
func Distance(a, b HexCoord) int {
	dq := absInt(a.Q - b.Q)
	dr := absInt(a.R - b.R)
	ds := absInt(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// NewHexDisc builds a hexagonal disc mesh of the given radius: every
// hex with max(|q|,|r|,|s|) <= radius. Cells are indexed in (r, q)
// scan order for determinism; hexes outside the disc appear as Boundary
// sentinels. Returns the graph and the axial coordinate of each cell.
func NewHexDisc(radius int) (*Graph, []HexCoord) {
	index := make(map[HexCoord]int32)
	var coords []HexCoord

	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			h := HexCoord{Q: q, R: r}
			if hexMag(h) > radius {
				continue
			}
			index[h] = int32(len(coords))
			coords = append(coords, h)
		}
	}

	n := len(coords)
	g := &Graph{
		Offsets:   make([]int32, n+1),
		Neighbors: make([]int32, 0, n*6),
	}
	for c, h := range coords {
		g.Offsets[c] = int32(len(g.Neighbors))
		for _, d := range hexDirections {
			nb := HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
			id, ok := index[nb]
			if !ok {
				id = Boundary
			}
			g.Neighbors = append(g.Neighbors, id)
		}
	}
	g.Offsets[n] = int32(len(g.Neighbors))
	return g, coords
}

// hexMag returns max(|q|,|r|,|s|), the disc radius of a hex.
func hexMag(h HexCoord) int {
	aq, ar, as := absInt(h.Q), absInt(h.R), absInt(h.S())
	max := aq
	if ar > max {
		max = ar
	}
	if as > max {
		max = as
	}
	return max
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
