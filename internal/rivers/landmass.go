package rivers

import "github.com/talgya/riverforge/internal/mesh"

// Landmasses labels each maximal connected set of land cells with a
// component id. Components are numbered in first-encountered (cell-id)
// order. Immutable once computed.
type Landmasses struct {
	Component []int32 // per-cell component id, -1 for water
	Sizes     []int   // cell count per component
}

// Count returns the number of landmass components.
func (lm *Landmasses) Count() int {
	return len(lm.Sizes)
}

// LabelLandmasses flood fills land cells over the adjacency graph.
// Water cells break connectivity.
func LabelLandmasses(g *mesh.Graph, wb *WaterBodies) *Landmasses {
	n := g.CellCount()
	lm := &Landmasses{Component: make([]int32, n)}
	for i := range lm.Component {
		lm.Component[i] = -1
	}

	queue := make([]int32, 0, 64)
	maxPops := 2 * n
	for c := 0; c < n; c++ {
		if wb.IsWater[c] || lm.Component[c] != -1 {
			continue
		}
		id := int32(len(lm.Sizes))
		lm.Component[c] = id
		size := 1
		queue = append(queue[:0], int32(c))
		for head := 0; head < len(queue) && head < maxPops; head++ {
			cur := queue[head]
			for _, nb := range g.NeighborsOf(cur) {
				if nb == mesh.Boundary || wb.IsWater[nb] || lm.Component[nb] != -1 {
					continue
				}
				lm.Component[nb] = id
				size++
				queue = append(queue, nb)
			}
		}
		lm.Sizes = append(lm.Sizes, size)
	}
	return lm
}
