// Package mesh provides the cell adjacency graph consumed by the river
// generator, stored in compressed sparse row form, plus deterministic
// builders for the demo meshes used by the CLI and tests.
package mesh

import "fmt"

// Boundary is the reserved neighbor sentinel marking a slot that points
// off the edge of the mesh rather than at another cell.
const Boundary int32 = -1

// Graph is a compressed sparse row adjacency structure. Offsets has
// length cellCount+1; the neighbor ids of cell c live in
// Neighbors[Offsets[c]:Offsets[c+1]]. A neighbor entry equal to Boundary
// means that slot faces the mesh edge.
type Graph struct {
	Offsets   []int32
	Neighbors []int32
}

// CellCount returns the number of cells in the graph.
func (g *Graph) CellCount() int {
	if len(g.Offsets) == 0 {
		return 0
	}
	return len(g.Offsets) - 1
}

// NeighborsOf returns the neighbor slots of cell c, including any
// Boundary sentinels. The returned slice aliases the graph's storage.
func (g *Graph) NeighborsOf(c int32) []int32 {
	return g.Neighbors[g.Offsets[c]:g.Offsets[c+1]]
}

// Degree returns the number of neighbor slots of cell c.
func (g *Graph) Degree(c int32) int {
	return int(g.Offsets[c+1] - g.Offsets[c])
}

// Validate checks structural soundness: monotonic offsets that span the
// neighbor array exactly, and every neighbor id either Boundary or a
// valid cell index.
func (g *Graph) Validate() error {
	n := g.CellCount()
	if len(g.Offsets) != n+1 {
		return fmt.Errorf("offsets length %d, want cellCount+1", len(g.Offsets))
	}
	if n == 0 {
		return nil
	}
	if g.Offsets[0] != 0 {
		return fmt.Errorf("offsets[0] = %d, want 0", g.Offsets[0])
	}
	for c := 0; c < n; c++ {
		if g.Offsets[c+1] < g.Offsets[c] {
			return fmt.Errorf("offsets not monotonic at cell %d", c)
		}
	}
	if int(g.Offsets[n]) != len(g.Neighbors) {
		return fmt.Errorf("offsets end %d, want neighbor count %d", g.Offsets[n], len(g.Neighbors))
	}
	for i, nb := range g.Neighbors {
		if nb == Boundary {
			continue
		}
		if nb < 0 || int(nb) >= n {
			return fmt.Errorf("neighbor slot %d holds invalid cell id %d", i, nb)
		}
	}
	return nil
}
