package rivers

import "github.com/talgya/riverforge/internal/mesh"

// WaterBodies holds the land/ocean/lake classification of every cell.
// Computed once per generation call; the lake set can grow when the
// tracer promotes basin cells to new lakes.
type WaterBodies struct {
	IsWater   []bool
	IsOcean   []bool
	IsLake    []bool
	LakeCells []int32 // classification scan order, then creation order
}

// ClassifyWater derives the water classification from the elevation
// array and the water-level threshold. A cell is water if its elevation
// is at or below the threshold. Ocean is the flood fill seeded from
// every water cell touching the mesh boundary; unreached water is lake.
func ClassifyWater(g *mesh.Graph, elevation []float64, waterLevel float64) *WaterBodies {
	n := g.CellCount()
	wb := &WaterBodies{
		IsWater: make([]bool, n),
		IsOcean: make([]bool, n),
		IsLake:  make([]bool, n),
	}

	for c := 0; c < n; c++ {
		wb.IsWater[c] = elevation[c] <= waterLevel
	}

	// Seed the ocean fill from water cells on the mesh edge, in cell-id
	// order for determinism.
	queue := make([]int32, 0, n/4)
	for c := 0; c < n; c++ {
		if !wb.IsWater[c] {
			continue
		}
		for _, nb := range g.NeighborsOf(int32(c)) {
			if nb == mesh.Boundary {
				wb.IsOcean[c] = true
				queue = append(queue, int32(c))
				break
			}
		}
	}

	maxPops := 2 * n
	for head := 0; head < len(queue) && head < maxPops; head++ {
		c := queue[head]
		for _, nb := range g.NeighborsOf(c) {
			if nb == mesh.Boundary || !wb.IsWater[nb] || wb.IsOcean[nb] {
				continue
			}
			wb.IsOcean[nb] = true
			queue = append(queue, nb)
		}
	}

	for c := 0; c < n; c++ {
		if wb.IsWater[c] && !wb.IsOcean[c] {
			wb.IsLake[c] = true
			wb.LakeCells = append(wb.LakeCells, int32(c))
		}
	}
	return wb
}

// AddLake promotes a cell to a lake. Idempotent; returns true if the
// cell was newly registered.
func (wb *WaterBodies) AddLake(c int32) bool {
	if wb.IsLake[c] {
		return false
	}
	wb.IsWater[c] = true
	wb.IsLake[c] = true
	wb.LakeCells = append(wb.LakeCells, c)
	return true
}

// LakeOutlets resolves, for every lake cell, its lowest-elevation land
// neighbor (ocean excluded), tie-broken by smallest cell id. Returns a
// per-cell array holding the outlet cell, or -1 where no outlet exists
// (the tracer treats such lakes as hard terminals).
func LakeOutlets(g *mesh.Graph, elevation []float64, wb *WaterBodies) []int32 {
	n := g.CellCount()
	outlet := make([]int32, n)
	for i := range outlet {
		outlet[i] = -1
	}
	for _, lake := range wb.LakeCells {
		outlet[lake] = resolveOutlet(g, elevation, wb, lake)
	}
	return outlet
}

// resolveOutlet picks the lowest land neighbor of a lake cell, or -1.
func resolveOutlet(g *mesh.Graph, elevation []float64, wb *WaterBodies, lake int32) int32 {
	best := int32(-1)
	bestElev := 0.0
	for _, nb := range g.NeighborsOf(lake) {
		if nb == mesh.Boundary || wb.IsWater[nb] {
			continue
		}
		if best == -1 || elevation[nb] < bestElev ||
			(elevation[nb] == bestElev && nb < best) {
			best = nb
			bestElev = elevation[nb]
		}
	}
	return best
}
