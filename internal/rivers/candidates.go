package rivers

import (
	"sort"

	"github.com/talgya/riverforge/internal/mesh"
)

// SourceCandidate scores one land cell as a potential headwater.
type SourceCandidate struct {
	Cell         int32
	Elevation    float64
	Landmass     int32
	Concavity    float64
	LowerCount   int
	LakeAdjacent bool
	Score        float64
}

// SelectCandidates scores every eligible land cell as a potential river
// source and returns them sorted by score descending, ties broken by
// elevation descending then cell id ascending.
func SelectCandidates(g *mesh.Graph, elevation []float64, waterLevel float64,
	wb *WaterBodies, lm *Landmasses, cfg Config) []SourceCandidate {

	n := g.CellCount()

	// Headwater band from percentiles over land elevations.
	land := make([]float64, 0, n)
	for c := 0; c < n; c++ {
		if !wb.IsWater[c] {
			land = append(land, elevation[c])
		}
	}
	if len(land) == 0 {
		return nil
	}
	sort.Float64s(land)
	bandLo := percentile(land, cfg.HeadwaterLow)
	bandHi := percentile(land, cfg.HeadwaterHigh)
	if bandHi <= bandLo || bandHi-bandLo < bandMinSpan {
		bandHi = bandLo + bandMinSpan
	}

	cands := make([]SourceCandidate, 0, n/8)
	for c := 0; c < n; c++ {
		if wb.IsWater[c] {
			continue
		}
		e := elevation[c]

		landNeighbors := 0
		higher, lower, nearLevel := 0, 0, 0
		sumDrop := 0.0
		lakeAdj := false
		for _, nb := range g.NeighborsOf(int32(c)) {
			if nb == mesh.Boundary {
				continue
			}
			if wb.IsWater[nb] {
				if wb.IsLake[nb] {
					lakeAdj = true
				}
				continue
			}
			landNeighbors++
			ne := elevation[nb]
			switch {
			case ne > e+levelEps:
				higher++
			case ne < e-levelEps:
				lower++
				sumDrop += e - ne
			default:
				nearLevel++
			}
		}

		// Rejection rules. Lake adjacency rescues everything except
		// isolation.
		if landNeighbors == 0 {
			continue
		}
		if !lakeAdj {
			if higher == 0 { // local maximum
				continue
			}
			if lower == 0 { // local minimum
				continue
			}
			if e < bandLo || e > bandHi {
				continue
			}
			if e-waterLevel < waterMargin {
				continue
			}
		}

		normElev := clamp01((e - bandLo) / (bandHi - bandLo))
		meanDrop := 0.0
		if lower > 0 {
			meanDrop = sumDrop / float64(lower)
		}
		lowerFrac := 0.0
		if lower+nearLevel > 0 {
			lowerFrac = float64(lower) / float64(lower+nearLevel)
		}
		concavity := clamp01(float64(higher) / float64(landNeighbors))

		score := 0.6*normElev + 0.25*meanDrop + 0.10*lowerFrac + 0.05*concavity
		if lakeAdj {
			score += 0.25
		}

		cands = append(cands, SourceCandidate{
			Cell:         int32(c),
			Elevation:    e,
			Landmass:     lm.Component[c],
			Concavity:    concavity,
			LowerCount:   lower,
			LakeAdjacent: lakeAdj,
			Score:        score,
		})
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Elevation != b.Elevation {
			return a.Elevation > b.Elevation
		}
		return a.Cell < b.Cell
	})
	return cands
}

// percentile reads the p-th percentile of ascending-sorted values using
// the truncated-rank index.
func percentile(sorted []float64, p float64) float64 {
	idx := int(clamp01(p) * float64(len(sorted)-1))
	return sorted[idx]
}
