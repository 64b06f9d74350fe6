package mesh

import "testing"

func TestNewGrid_Adjacency(t *testing.T) {
	g := NewGrid(4, 3)

	if got := g.CellCount(); got != 12 {
		t.Fatalf("cell count = %d, want 12", got)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	// Interior cell (1,1) = id 5: west 4, east 6, north 1, south 9.
	want := []int32{4, 6, 1, 9}
	got := g.NeighborsOf(5)
	if len(got) != len(want) {
		t.Fatalf("neighbors of 5: %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d of cell 5 = %d, want %d", i, got[i], want[i])
		}
	}

	// Corner cell 0 faces the boundary west and north.
	corner := g.NeighborsOf(0)
	if corner[0] != Boundary || corner[2] != Boundary {
		t.Errorf("corner cell 0 neighbors = %v, want boundary in slots 0 and 2", corner)
	}
	if corner[1] != 1 || corner[3] != 4 {
		t.Errorf("corner cell 0 neighbors = %v, want east 1, south 4", corner)
	}
}

func TestNewGrid_Symmetry(t *testing.T) {
	g := NewGrid(6, 5)
	for c := int32(0); int(c) < g.CellCount(); c++ {
		for _, nb := range g.NeighborsOf(c) {
			if nb == Boundary {
				continue
			}
			back := false
			for _, nn := range g.NeighborsOf(nb) {
				if nn == c {
					back = true
					break
				}
			}
			if !back {
				t.Fatalf("adjacency not symmetric: %d -> %d", c, nb)
			}
		}
	}
}

func TestNewHexDisc_CellCount(t *testing.T) {
	for _, radius := range []int{1, 3, 7} {
		g, coords := NewHexDisc(radius)
		// A hex disc of radius r holds 3r^2 + 3r + 1 cells.
		want := 3*radius*radius + 3*radius + 1
		if g.CellCount() != want {
			t.Errorf("radius %d: cell count = %d, want %d", radius, g.CellCount(), want)
		}
		if len(coords) != want {
			t.Errorf("radius %d: coords length = %d, want %d", radius, len(coords), want)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("radius %d: validate: %v", radius, err)
		}
	}
}

func TestNewHexDisc_NeighborsMatchDistance(t *testing.T) {
	g, coords := NewHexDisc(4)
	for c := int32(0); int(c) < g.CellCount(); c++ {
		boundarySlots := 0
		for _, nb := range g.NeighborsOf(c) {
			if nb == Boundary {
				boundarySlots++
				continue
			}
			if d := Distance(coords[c], coords[nb]); d != 1 {
				t.Fatalf("cells %d and %d are neighbors but distance %d", c, nb, d)
			}
		}
		if hexMag(coords[c]) < 4 && boundarySlots != 0 {
			t.Errorf("interior cell %d has %d boundary slots", c, boundarySlots)
		}
		if hexMag(coords[c]) == 4 && boundarySlots == 0 {
			t.Errorf("rim cell %d has no boundary slot", c)
		}
	}
}

func TestValidate_Rejects(t *testing.T) {
	bad := &Graph{
		Offsets:   []int32{0, 2, 1},
		Neighbors: []int32{1, 0},
	}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for non-monotonic offsets")
	}

	badID := &Graph{
		Offsets:   []int32{0, 1, 2},
		Neighbors: []int32{1, 7},
	}
	if err := badID.Validate(); err == nil {
		t.Error("expected error for out-of-range neighbor id")
	}
}
