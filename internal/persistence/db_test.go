package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/riverforge/internal/rivers"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleResult() *rivers.Result {
	return &rivers.Result{
		Rivers: []rivers.RiverPath{
			{
				Cells:    []int32{40, 31, 22, 13, 4},
				Source:   40,
				Sink:     4,
				SinkType: rivers.SinkOcean,
				Length:   5,
			},
			{
				Cells:       []int32{58, 49, 40, 31, 22, 13, 4},
				Source:      58,
				Sink:        4,
				SinkType:    rivers.SinkOcean,
				Length:      7,
				Confluences: 1,
				Tributary:   true,
			},
		},
		HasRiver:  make([]byte, 81),
		NewLakes:  []int32{77},
		Requested: 2,
		Generated: 1,
		Log:       []string{"generated 1 of 2 requested rivers"},
	}
}

func TestSaveRun_Roundtrip(t *testing.T) {
	db := openTestDB(t)
	res := sampleResult()

	runID, err := db.SaveRun("grid 9x9", 81, rivers.DefaultConfig(2), res)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	loaded, err := db.LoadRivers(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(res.Rivers) {
		t.Fatalf("loaded %d rivers, want %d", len(loaded), len(res.Rivers))
	}
	for i, r := range loaded {
		want := res.Rivers[i]
		if r.Source != want.Source || r.Sink != want.Sink ||
			r.SinkType != want.SinkType || r.Tributary != want.Tributary ||
			r.Confluences != want.Confluences {
			t.Errorf("river %d = %+v, want %+v", i, r, want)
		}
		if len(r.Cells) != len(want.Cells) {
			t.Fatalf("river %d cells = %v, want %v", i, r.Cells, want.Cells)
		}
		for j := range want.Cells {
			if r.Cells[j] != want.Cells[j] {
				t.Errorf("river %d cell %d = %d, want %d", i, j, r.Cells[j], want.Cells[j])
			}
		}
	}

	logs, err := db.RunLogs(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 || logs[0] != res.Log[0] {
		t.Errorf("logs = %v, want %v", logs, res.Log)
	}
}

func TestRecentRuns(t *testing.T) {
	db := openTestDB(t)
	res := sampleResult()

	for i := 0; i < 3; i++ {
		if _, err := db.SaveRun("grid 9x9", 81, rivers.DefaultConfig(2), res); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := db.RecentRuns(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("recent runs = %d, want 2", len(runs))
	}
	for _, r := range runs {
		if r.CellCount != 81 || r.Requested != 2 || r.Generated != 1 {
			t.Errorf("run summary = %+v", r)
		}
	}
}
