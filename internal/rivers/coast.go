package rivers

import "github.com/talgya/riverforge/internal/mesh"

// CoastDistances computes each land cell's hop distance to open ocean
// by multi-source breadth-first search: land cells directly adjacent to
// an ocean cell start at 0, and distance grows by one per land-to-land
// hop. Water never joins the frontier. Land with no all-land route to
// the sea keeps coastFar; ocean cells are reported as 0 so descent
// scoring treats stepping into the sea as neutral rather than as a
// move away from the coast. The field is a heuristic bias only.
func CoastDistances(g *mesh.Graph, wb *WaterBodies) []int32 {
	n := g.CellCount()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = coastFar
	}

	queue := make([]int32, 0, n/4)
	for c := 0; c < n; c++ {
		if wb.IsOcean[c] {
			dist[c] = 0
			continue
		}
		if wb.IsWater[c] {
			continue
		}
		for _, nb := range g.NeighborsOf(int32(c)) {
			if nb != mesh.Boundary && wb.IsOcean[nb] {
				dist[c] = 0
				queue = append(queue, int32(c))
				break
			}
		}
	}

	maxPops := 2 * n
	for head := 0; head < len(queue) && head < maxPops; head++ {
		c := queue[head]
		for _, nb := range g.NeighborsOf(c) {
			if nb == mesh.Boundary || wb.IsWater[nb] || dist[nb] != coastFar {
				continue
			}
			dist[nb] = dist[c] + 1
			queue = append(queue, nb)
		}
	}
	return dist
}
