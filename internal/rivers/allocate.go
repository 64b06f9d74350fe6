package rivers

import (
	"fmt"
	"math"
	"sort"

	"github.com/talgya/riverforge/internal/mesh"
)

// AllocateSources distributes the requested river count across
// landmasses proportionally to area, then walks the scored candidate
// list once, accepting each landmass's quota subject to the minimum
// source spacing. Returns the accepted primaries in score order plus
// shortfall log lines (soft outcomes, never errors).
func AllocateSources(g *mesh.Graph, wb *WaterBodies, lm *Landmasses,
	cands []SourceCandidate, cfg Config) ([]SourceCandidate, []string) {

	nComp := lm.Count()
	if nComp == 0 || cfg.RiverCount <= 0 {
		return nil, nil
	}

	avail := make([]int, nComp)
	for _, c := range cands {
		avail[c.Landmass]++
	}

	totalLand := 0
	for _, s := range lm.Sizes {
		totalLand += s
	}

	// Proportional shares: floor the ideal share per landmass, then hand
	// out the remainder by largest fractional part (ties by id), capped
	// by candidate availability.
	quota := make([]int, nComp)
	frac := make([]float64, nComp)
	pool := cfg.RiverCount
	for id := 0; id < nComp; id++ {
		ideal := float64(cfg.RiverCount) * float64(lm.Sizes[id]) / float64(totalLand)
		fl := int(math.Floor(ideal))
		frac[id] = ideal - float64(fl)
		if fl > avail[id] {
			fl = avail[id]
		}
		quota[id] = fl
		pool -= fl
	}

	byFrac := make([]int, nComp)
	for id := range byFrac {
		byFrac[id] = id
	}
	sort.Slice(byFrac, func(i, j int) bool {
		a, b := byFrac[i], byFrac[j]
		if frac[a] != frac[b] {
			return frac[a] > frac[b]
		}
		return a < b
	})
	for _, id := range byFrac {
		if pool == 0 {
			break
		}
		if quota[id] < avail[id] {
			quota[id]++
			pool--
		}
	}

	// Still-unplaced remainder goes to whoever has spare candidates,
	// largest spare first.
	for pool > 0 {
		best := -1
		for id := 0; id < nComp; id++ {
			spare := avail[id] - quota[id]
			if spare <= 0 {
				continue
			}
			if best == -1 || spare > avail[best]-quota[best] {
				best = id
			}
		}
		if best == -1 {
			break
		}
		quota[best]++
		pool--
	}

	// Single pass over the globally sorted candidates, enforcing the
	// spacing radius against every source accepted so far.
	n := g.CellCount()
	isSource := make([]bool, n)
	seen := make([]int32, n)
	for i := range seen {
		seen[i] = -1
	}
	queue := make([]int32, 0, 256)

	placed := make([]int, nComp)
	var accepted []SourceCandidate
	for walk, c := range cands {
		id := c.Landmass
		if placed[id] >= quota[id] {
			continue
		}
		if tooClose(g, wb, isSource, seen, &queue, int32(walk), c.Cell, cfg.MinSourceSpacing) {
			continue
		}
		isSource[c.Cell] = true
		placed[id]++
		accepted = append(accepted, c)
	}

	var logs []string
	for id := 0; id < nComp; id++ {
		if placed[id] < quota[id] {
			logs = append(logs, fmt.Sprintf(
				"landmass %d: placed %d of %d sources (%d cells, %d candidates)",
				id, placed[id], quota[id], lm.Sizes[id], avail[id]))
		}
	}
	return accepted, logs
}

// tooClose reports whether any accepted source lies within the spacing
// radius of cell, by breadth-first search bounded to that many hops.
// Ocean blocks the search; lakes and land do not.
func tooClose(g *mesh.Graph, wb *WaterBodies, isSource []bool,
	seen []int32, queue *[]int32, stamp, cell int32, spacing int) bool {

	q := (*queue)[:0]
	q = append(q, cell)
	seen[cell] = stamp
	depth := []int32{0}

	maxPops := 4 * spacing * spacing * 8
	for head := 0; head < len(q) && head < maxPops; head++ {
		cur := q[head]
		d := depth[head]
		if isSource[cur] {
			*queue = q
			return true
		}
		if int(d) >= spacing {
			continue
		}
		for _, nb := range g.NeighborsOf(cur) {
			if nb == mesh.Boundary || seen[nb] == stamp || wb.IsOcean[nb] {
				continue
			}
			seen[nb] = stamp
			q = append(q, nb)
			depth = append(depth, d+1)
		}
	}
	*queue = q
	return false
}
