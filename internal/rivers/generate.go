package rivers

import (
	"fmt"

	"github.com/talgya/riverforge/internal/mesh"
)

// Generate runs the full river network computation: water
// classification, coast distances, lake outlets, landmass labeling,
// candidate scoring, source allocation, and one trace per candidate in
// the deterministic processing order. Input arrays are read-only for
// the duration of the call; all mutable state is owned by the call, so
// independent generations may run concurrently on separate snapshots.
func Generate(g *mesh.Graph, elevation []float64, waterLevel float64, cfg Config) (*Result, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("adjacency graph: %w", err)
	}
	if len(elevation) != g.CellCount() {
		return nil, fmt.Errorf("elevation length %d, want %d cells", len(elevation), g.CellCount())
	}
	if cfg.RiverCount < 1 {
		return nil, fmt.Errorf("river count %d, want at least 1", cfg.RiverCount)
	}
	cfg = cfg.normalized()

	wb := ClassifyWater(g, elevation, waterLevel)
	coast := CoastDistances(g, wb)
	outlet := LakeOutlets(g, elevation, wb)
	lm := LabelLandmasses(g, wb)
	cands := SelectCandidates(g, elevation, waterLevel, wb, lm, cfg)
	primaries, logs := AllocateSources(g, wb, lm, cands, cfg)
	order := BuildOrder(cands, primaries, cfg.TributaryDensity)

	res := &Result{
		HasRiver:  make([]byte, g.CellCount()),
		Requested: cfg.RiverCount,
		Log:       logs,
	}
	t := newTracer(g, elevation, cfg, wb, coast, outlet)

	run := func(c SourceCandidate) {
		if t.flagged[c.Cell] {
			return
		}
		tr, ok := t.trace(c.Cell)
		if !ok || len(tr.cells) < cfg.MinRiverLength {
			return
		}
		commit(t, tr, res)
	}

	// One pass over the processing order. Tributary merges do not count
	// toward the distinct total, so the loop keeps consuming candidates
	// until enough independent rivers exist or the order runs dry.
	for _, c := range order.sequence() {
		if res.Generated >= cfg.RiverCount {
			break
		}
		run(c)
	}

	if res.Generated < res.Requested {
		res.Log = append(res.Log, fmt.Sprintf(
			"generated %d of %d requested rivers", res.Generated, res.Requested))
	}
	return res, nil
}

// commit writes one accepted trace into the shared state: flags,
// downstream pointers, new lakes, and the result record.
func commit(t *tracer, tr traceResult, res *Result) {
	if tr.newLake >= 0 && t.wb.AddLake(tr.newLake) {
		res.NewLakes = append(res.NewLakes, tr.newLake)
		t.outlet[tr.newLake] = resolveOutlet(t.g, t.elev, t.wb, tr.newLake)
	}

	for i, c := range tr.cells {
		if !t.flagged[c] {
			t.flagged[c] = true
			res.HasRiver[c] = 1
		}
		if i+1 < len(tr.cells) && t.downstream[c] == -1 {
			t.downstream[c] = tr.cells[i+1]
		}
	}

	path := RiverPath{
		Cells:       tr.cells,
		Source:      tr.cells[0],
		Sink:        tr.cells[len(tr.cells)-1],
		SinkType:    tr.sinkType,
		Length:      len(tr.cells),
		Confluences: tr.confluences,
		Tributary:   tr.tributary,
	}
	res.Rivers = append(res.Rivers, path)
	if !tr.tributary {
		res.Generated++
	}

	res.Log = append(res.Log, fmt.Sprintf(
		"river %d: source=%d sink=%d (%s) length=%d confluences=%d tributary=%t",
		len(res.Rivers), path.Source, path.Sink, path.SinkType, path.Length,
		path.Confluences, path.Tributary))
}
