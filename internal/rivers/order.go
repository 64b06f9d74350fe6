package rivers

import "math"

// candidateOrder is the final deterministic processing order: accepted
// primaries first, then a tributary prefix of the leftover candidates
// sized by TributaryDensity, then the rest as reserve. The order
// decides who wins ambiguous confluence situations, so it must be
// stable.
type candidateOrder struct {
	primary   []SourceCandidate
	tributary []SourceCandidate
	reserve   []SourceCandidate
}

// sequence flattens the order into the single processing pass.
func (o candidateOrder) sequence() []SourceCandidate {
	out := make([]SourceCandidate, 0, len(o.primary)+len(o.tributary)+len(o.reserve))
	out = append(out, o.primary...)
	out = append(out, o.tributary...)
	return append(out, o.reserve...)
}

// BuildOrder merges the accepted primary sources with the remaining
// candidates into the processing order.
func BuildOrder(cands, primaries []SourceCandidate, density float64) candidateOrder {
	isPrimary := make(map[int32]bool, len(primaries))
	for _, p := range primaries {
		isPrimary[p.Cell] = true
	}

	remaining := make([]SourceCandidate, 0, len(cands)-len(primaries))
	for _, c := range cands {
		if !isPrimary[c.Cell] {
			remaining = append(remaining, c)
		}
	}

	prefix := int(math.Round(clamp01(density) * float64(len(remaining))))
	return candidateOrder{
		primary:   primaries,
		tributary: remaining[:prefix],
		reserve:   remaining[prefix:],
	}
}
