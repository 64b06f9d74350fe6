package terrain

import (
	"testing"

	"github.com/talgya/riverforge/internal/mesh"
)

func TestElevationGrid_Range(t *testing.T) {
	elev := ElevationGrid(40, 30, DefaultConfig(7))
	if len(elev) != 1200 {
		t.Fatalf("elevation length = %d, want 1200", len(elev))
	}
	for i, e := range elev {
		if e < 0 || e > 1 {
			t.Fatalf("elevation[%d] = %f, out of [0,1]", i, e)
		}
	}
}

func TestElevationGrid_Deterministic(t *testing.T) {
	a := ElevationGrid(32, 24, DefaultConfig(99))
	b := ElevationGrid(32, 24, DefaultConfig(99))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("elevation[%d] differs across runs: %f != %f", i, a[i], b[i])
		}
	}
}

func TestElevationGrid_EdgeFalloff(t *testing.T) {
	// Corners sit at the full falloff radius and must be flattened to
	// ocean depth.
	elev := ElevationGrid(50, 50, DefaultConfig(3))
	corners := []int{0, 49, 49 * 50, 50*50 - 1}
	for _, c := range corners {
		if elev[c] > 0.05 {
			t.Errorf("corner cell %d elevation = %f, want near 0", c, elev[c])
		}
	}
}

func TestElevationHex_MatchesMesh(t *testing.T) {
	g, coords := mesh.NewHexDisc(10)
	elev := ElevationHex(coords, 10, DefaultConfig(5))
	if len(elev) != g.CellCount() {
		t.Fatalf("elevation length = %d, want %d", len(elev), g.CellCount())
	}
	for i, e := range elev {
		if e < 0 || e > 1 {
			t.Fatalf("elevation[%d] = %f, out of [0,1]", i, e)
		}
	}
}
