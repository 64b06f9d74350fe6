// Package rivers generates a procedural river network over an irregular
// polygonal terrain mesh: headwater selection, greedy-descent tracing,
// tributary merging, and lake handling, all fully deterministic.
// See design doc Section 4.
package rivers

// Config is the immutable parameter bundle for one generation call.
// The generator reads no ambient state; everything it needs arrives here.
type Config struct {
	RiverCount       int     // Requested number of distinct rivers (required)
	MinRiverLength   int     // Minimum committed path length in cells (floor 2)
	AllowNewLakes    bool    // Permit basin cells to become new lakes
	HeadwaterLow     float64 // Lower percentile of the headwater elevation band
	HeadwaterHigh    float64 // Upper percentile of the headwater elevation band
	MinSourceSpacing int     // Minimum hops between primary sources (floor 1)
	MeanderBias      float64 // 0..1, scales the gentle-slope threshold
	FlatTolerance    int     // Max consecutive zero-drop steps per trace
	TributaryDensity float64 // 0..1, fraction of leftover candidates traced as tributaries
}

// DefaultConfig returns the standard configuration for the given river
// count. Callers tweak fields from here rather than zero-filling.
func DefaultConfig(riverCount int) Config {
	return Config{
		RiverCount:       riverCount,
		MinRiverLength:   6,
		AllowNewLakes:    true,
		HeadwaterLow:     0.55,
		HeadwaterHigh:    0.92,
		MinSourceSpacing: 12,
		MeanderBias:      0.6,
		FlatTolerance:    3,
		TributaryDensity: 0.45,
	}
}

// normalized clamps out-of-range fields to their documented floors.
func (c Config) normalized() Config {
	if c.MinRiverLength < 2 {
		c.MinRiverLength = 2
	}
	if c.MinSourceSpacing < 1 {
		c.MinSourceSpacing = 1
	}
	if c.FlatTolerance < 0 {
		c.FlatTolerance = 0
	}
	c.MeanderBias = clamp01(c.MeanderBias)
	c.TributaryDensity = clamp01(c.TributaryDensity)
	return c
}

// gentleThreshold is the max per-step elevation drop still considered a
// meander rather than a steep descent.
func gentleThreshold(meanderBias float64) float64 {
	return 0.02 + 0.08*meanderBias
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
