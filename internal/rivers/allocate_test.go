package rivers

import (
	"strings"
	"testing"

	"github.com/talgya/riverforge/internal/mesh"
)

// twoIslands builds a 26x7 grid split by an ocean column at x=18:
// a 126-cell west island and a 49-cell east island.
func twoIslands(t *testing.T) (*mesh.Graph, *WaterBodies, *Landmasses) {
	t.Helper()
	w, h := 26, 7
	g := mesh.NewGrid(w, h)
	elev := gridElev(w, h, func(x, y int) float64 {
		if x == 18 {
			return 0.10
		}
		return 0.50
	})
	wb := ClassifyWater(g, elev, 0.20)
	lm := LabelLandmasses(g, wb)
	if lm.Count() != 2 {
		t.Fatalf("fixture landmass count = %d, want 2", lm.Count())
	}
	return g, wb, lm
}

func cand(cell int32, landmass int32, score float64) SourceCandidate {
	return SourceCandidate{Cell: cell, Landmass: landmass, Score: score}
}

func TestAllocateSources_ProportionalQuota(t *testing.T) {
	g, wb, lm := twoIslands(t)
	const w = 26

	// Ideal shares for R=5 are 3.6 west, 1.4 east: floors 3+1, and the
	// remainder goes to the larger fractional part (west) → 4 and 1.
	cands := []SourceCandidate{
		cand(1*w+1, 0, 0.90),
		cand(1*w+9, 0, 0.80),
		cand(5*w+1, 0, 0.70),
		cand(5*w+9, 0, 0.60),
		cand(1*w+2, 0, 0.55), // adjacent to the first west source
		cand(1*w+20, 1, 0.50),
		cand(5*w+24, 1, 0.45),
	}

	cfg := DefaultConfig(5)
	cfg.MinSourceSpacing = 2
	accepted, logs := AllocateSources(g, wb, lm, cands, cfg)

	if len(accepted) != 5 {
		t.Fatalf("accepted %d sources, want 5 (%v)", len(accepted), accepted)
	}
	perLandmass := map[int32]int{}
	for _, a := range accepted {
		perLandmass[a.Landmass]++
	}
	if perLandmass[0] != 4 || perLandmass[1] != 1 {
		t.Errorf("sources per landmass = %v, want 4 west / 1 east", perLandmass)
	}
	if len(logs) != 0 {
		t.Errorf("unexpected shortfall logs: %v", logs)
	}
}

func TestAllocateSources_SpacingRejects(t *testing.T) {
	g, wb, lm := twoIslands(t)
	const w = 26

	// Two west candidates one hop apart with a two-hop spacing: only
	// the better one fits, and the shortfall is logged.
	cands := []SourceCandidate{
		cand(1*w+1, 0, 0.90),
		cand(1*w+2, 0, 0.80),
	}

	cfg := DefaultConfig(2)
	cfg.MinSourceSpacing = 2
	accepted, logs := AllocateSources(g, wb, lm, cands, cfg)

	if len(accepted) != 1 || accepted[0].Cell != 1*w+1 {
		t.Fatalf("accepted = %v, want only the higher-scored cell", accepted)
	}
	if len(logs) != 1 || !strings.Contains(logs[0], "placed 1 of 2") {
		t.Errorf("logs = %v, want a 'placed 1 of 2' shortfall entry", logs)
	}
}

func TestAllocateSources_OceanBlocksSpacing(t *testing.T) {
	g, wb, lm := twoIslands(t)
	const w = 26

	// Cells (17,3) and (19,3) are two grid steps apart but on opposite
	// sides of the ocean column, which the spacing search cannot cross.
	cands := []SourceCandidate{
		cand(3*w+17, 0, 0.90),
		cand(3*w+19, 1, 0.80),
	}

	cfg := DefaultConfig(2)
	cfg.MinSourceSpacing = 4
	accepted, _ := AllocateSources(g, wb, lm, cands, cfg)

	if len(accepted) != 2 {
		t.Fatalf("accepted = %v, want both shore cells", accepted)
	}
}

func TestAllocateSources_RemainderToSpareCapacity(t *testing.T) {
	g, wb, lm := twoIslands(t)
	const w = 26

	// West has only one candidate, so its quota caps there and the rest
	// of R=4 spills to the east island's spare capacity.
	cands := []SourceCandidate{
		cand(1*w+1, 0, 0.90),
		cand(1*w+20, 1, 0.80),
		cand(3*w+24, 1, 0.70),
		cand(5*w+20, 1, 0.60),
	}

	cfg := DefaultConfig(4)
	cfg.MinSourceSpacing = 2
	accepted, _ := AllocateSources(g, wb, lm, cands, cfg)

	if len(accepted) != 4 {
		t.Fatalf("accepted %d sources, want 4 (%v)", len(accepted), accepted)
	}
	perLandmass := map[int32]int{}
	for _, a := range accepted {
		perLandmass[a.Landmass]++
	}
	if perLandmass[0] != 1 || perLandmass[1] != 3 {
		t.Errorf("sources per landmass = %v, want 1 west / 3 east", perLandmass)
	}
}
