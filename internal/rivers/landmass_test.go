package rivers

import (
	"testing"

	"github.com/talgya/riverforge/internal/mesh"
)

func TestLabelLandmasses_TwoIslands(t *testing.T) {
	// Water column x=3 splits the map into a 3-wide west island and a
	// 2-wide east island.
	w, h := 6, 4
	g := mesh.NewGrid(w, h)
	elev := gridElev(w, h, func(x, y int) float64 {
		if x == 3 {
			return 0.10
		}
		return 0.50
	})

	wb := ClassifyWater(g, elev, 0.20)
	lm := LabelLandmasses(g, wb)

	if lm.Count() != 2 {
		t.Fatalf("component count = %d, want 2", lm.Count())
	}
	// First-encountered order: cell 0 starts component 0.
	if lm.Component[0] != 0 {
		t.Errorf("cell 0 component = %d, want 0", lm.Component[0])
	}
	if lm.Sizes[0] != 3*h {
		t.Errorf("west island size = %d, want %d", lm.Sizes[0], 3*h)
	}
	if lm.Sizes[1] != 2*h {
		t.Errorf("east island size = %d, want %d", lm.Sizes[1], 2*h)
	}

	for y := 0; y < h; y++ {
		if got := lm.Component[int32(y*w+3)]; got != -1 {
			t.Errorf("water cell (3,%d) component = %d, want -1", y, got)
		}
		if got := lm.Component[int32(y*w+5)]; got != 1 {
			t.Errorf("east cell (5,%d) component = %d, want 1", y, got)
		}
	}
}

func TestLabelLandmasses_Deterministic(t *testing.T) {
	w, h := 9, 9
	g := mesh.NewGrid(w, h)
	elev := gridElev(w, h, func(x, y int) float64 {
		if (x+y)%3 == 0 {
			return 0.10
		}
		return 0.50
	})
	wb := ClassifyWater(g, elev, 0.20)

	a := LabelLandmasses(g, wb)
	b := LabelLandmasses(g, wb)
	if a.Count() != b.Count() {
		t.Fatalf("component counts differ: %d vs %d", a.Count(), b.Count())
	}
	for c := range a.Component {
		if a.Component[c] != b.Component[c] {
			t.Fatalf("cell %d labeled %d then %d", c, a.Component[c], b.Component[c])
		}
	}
}
