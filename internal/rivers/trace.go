package rivers

import (
	"sort"

	"github.com/talgya/riverforge/internal/mesh"
)

// tracer holds the shared state the greedy-descent state machine reads
// and, on commit, mutates: per-cell river flags, downstream pointers,
// and the growable water classification.
type tracer struct {
	g      *mesh.Graph
	elev   []float64
	cfg    Config
	wb     *WaterBodies
	coast  []int32
	outlet []int32

	flagged    []bool
	downstream []int32

	// Per-trace scratch, stamp-versioned so no clearing between traces.
	visited []int32
	stamp   int32

	stepBuf []stepCandidate
}

// traceResult is one finished trace before commit. cells runs source to
// sink; newLake is the basin cell promoted to a lake, or -1.
type traceResult struct {
	cells       []int32
	sinkType    SinkType
	confluences int
	tributary   bool
	newLake     int32
}

type stepCandidate struct {
	cell  int32
	drop  float64
	delta float64
	score float64
}

func newTracer(g *mesh.Graph, elev []float64, cfg Config, wb *WaterBodies,
	coast, outlet []int32) *tracer {

	n := g.CellCount()
	t := &tracer{
		g:          g,
		elev:       elev,
		cfg:        cfg,
		wb:         wb,
		coast:      coast,
		outlet:     outlet,
		flagged:    make([]bool, n),
		downstream: make([]int32, n),
		visited:    make([]int32, n),
	}
	for i := range t.downstream {
		t.downstream[i] = -1
	}
	for i := range t.visited {
		t.visited[i] = -1
	}
	return t
}

// trace runs one greedy descent from start. Returns ok=false when the
// trace is rejected: an uphill confluence, a dead end with new lakes
// disabled, or the iteration ceiling.
func (t *tracer) trace(start int32) (traceResult, bool) {
	t.stamp++
	t.mark(start)

	gentle := gentleThreshold(t.cfg.MeanderBias)
	path := []int32{start}
	cur := start
	flats := 0

	maxSteps := 2*t.g.CellCount() + 16
	for step := 0; step < maxSteps; step++ {
		cands := t.downhillNeighbors(cur, gentle)

		// Confluence takes priority over movement: merging into the
		// best-ranked committed neighbor ends the trace. An uphill
		// merge rejects the whole trace, never a truncated river.
		for _, c := range cands {
			if !t.flagged[c.cell] {
				continue
			}
			if t.elev[c.cell] > t.elev[cur] {
				return traceResult{}, false
			}
			return t.mergeInto(path, c.cell)
		}

		var chosen *stepCandidate
		for i := range cands {
			c := &cands[i]
			if t.seen(c.cell) {
				continue
			}
			if c.drop < dropEps && flats >= t.cfg.FlatTolerance {
				continue
			}
			chosen = c
			break
		}

		if chosen == nil {
			if t.cfg.AllowNewLakes {
				return traceResult{path, SinkLake, 0, false, cur}, true
			}
			return traceResult{}, false
		}

		next := chosen.cell
		if t.wb.IsOcean[next] {
			path = append(path, next)
			return traceResult{path, SinkOcean, 0, false, -1}, true
		}
		if t.wb.IsLake[next] {
			path = append(path, next)
			t.mark(next)
			// Chain through the lake outlet when it exists, is fresh,
			// and sits within the gentle band above the pre-lake cell.
			out := t.outlet[next]
			if out >= 0 && !t.seen(out) &&
				t.elev[out] <= t.elev[cur]+gentle+outletSlack {
				if t.flagged[out] {
					// A committed river already owns the outlet; join it.
					return t.mergeInto(path, out)
				}
				path = append(path, out)
				t.mark(out)
				cur = out
				flats = 0
				continue
			}
			return traceResult{path, SinkLake, 0, false, -1}, true
		}

		path = append(path, next)
		t.mark(next)
		if chosen.drop < dropEps {
			flats++
		} else {
			flats = 0
		}
		cur = next
	}

	// Ceiling hit: malformed adjacency, abandon this trace silently.
	return traceResult{}, false
}

// mergeInto appends the committed neighbor and its whole downstream
// chain, finishing the trace as a tributary.
func (t *tracer) mergeInto(path []int32, into int32) (traceResult, bool) {
	maxChain := t.g.CellCount() + 1
	cur := into
	for i := 0; cur != -1 && i < maxChain; i++ {
		path = append(path, cur)
		cur = t.downstream[cur]
	}
	sink := path[len(path)-1]
	sinkType := SinkLake
	if t.wb.IsOcean[sink] {
		sinkType = SinkOcean
	}
	return traceResult{path, sinkType, 1, true, -1}, true
}

// downhillNeighbors collects and ranks every neighbor at or below the
// current elevation (flats included). Ranking: combined score, then raw
// drop, then coast-distance delta, then cell id.
func (t *tracer) downhillNeighbors(cur int32, gentle float64) []stepCandidate {
	cands := t.stepBuf[:0]
	e := t.elev[cur]
	nearCoast := t.coast[cur] <= 2

	for _, nb := range t.g.NeighborsOf(cur) {
		if nb == mesh.Boundary {
			continue
		}
		ne := t.elev[nb]
		if ne > e+levelEps {
			continue
		}
		drop := e - ne
		delta := coastDelta(t.coast, cur, nb)
		cands = append(cands, stepCandidate{
			cell:  nb,
			drop:  drop,
			delta: delta,
			score: stepScore(drop, delta, gentle, nearCoast),
		})
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.drop != b.drop {
			return a.drop > b.drop
		}
		if a.delta != b.delta {
			return a.delta > b.delta
		}
		return a.cell < b.cell
	})
	t.stepBuf = cands
	return cands
}

// stepScore combines the drop-magnitude term with the coast bias. The
// coast term weighs heavier once the trace is within two hops of the
// sea, so it runs for the coast instead of wandering.
func stepScore(drop, delta, gentle float64, nearCoast bool) float64 {
	w := 0.35
	if nearCoast {
		w = 1.2
	}
	return dropTerm(drop, gentle) + w*delta
}

// dropTerm rewards clearing the gentle threshold over merely grazing
// it: sub-gentle drops score proportionally but discounted.
func dropTerm(drop, gentle float64) float64 {
	if drop >= gentle {
		return 1 + (drop - gentle)
	}
	if drop <= 0 {
		return 0
	}
	return 0.6 * drop / gentle
}

// coastDelta is the coast-distance improvement of moving to nb, clamped
// so unreached-interior cells cannot swamp the drop term.
func coastDelta(coast []int32, cur, nb int32) float64 {
	d := float64(coast[cur]) - float64(coast[nb])
	if d > 3 {
		d = 3
	}
	if d < -3 {
		d = -3
	}
	return d
}

func (t *tracer) mark(c int32) { t.visited[c] = t.stamp }
func (t *tracer) seen(c int32) bool {
	return t.visited[c] == t.stamp
}
