// Package terrain synthesizes demo elevation fields from layered
// simplex noise. The river generator itself is agnostic to where its
// elevation array comes from; this package exists so the CLI and tests
// can produce full meshes end to end.
package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/riverforge/internal/mesh"
)

// Config holds elevation synthesis parameters.
type Config struct {
	Seed        int64   // Noise seed; same seed, same terrain
	Octaves     int     // Noise octaves
	Frequency   float64 // Base noise frequency
	Persistence float64 // Amplitude falloff per octave
	EdgePower   float64 // Exponent of the continental edge falloff
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:        seed,
		Octaves:     4,
		Frequency:   0.08,
		Persistence: 0.5,
		EdgePower:   3.5,
	}
}

// ElevationGrid generates an elevation value in [0,1] for every cell of
// a width×height grid mesh, shaped so elevation falls off toward the
// edges to leave an ocean border.
func ElevationGrid(width, height int, cfg Config) []float64 {
	noise := opensimplex.NewNormalized(cfg.Seed)
	elev := make([]float64, width*height)

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	halfSpan := math.Max(cx, cy)
	if halfSpan == 0 {
		halfSpan = 1
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x), float64(y)
			e := octaveNoise(noise, fx, fy, cfg)
			dist := math.Hypot(fx-cx, fy-cy) / halfSpan
			e *= edgeFalloff(dist, cfg.EdgePower)
			elev[y*width+x] = e
		}
	}
	return elev
}

// ElevationHex generates an elevation value in [0,1] for every cell of
// a hex disc mesh, given the per-cell axial coordinates and disc radius.
func ElevationHex(coords []mesh.HexCoord, radius int, cfg Config) []float64 {
	noise := opensimplex.NewNormalized(cfg.Seed)
	elev := make([]float64, len(coords))

	span := float64(radius)
	if span == 0 {
		span = 1
	}

	for i, h := range coords {
		// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
		x := float64(h.Q) + float64(h.R)*0.5
		y := float64(h.R) * math.Sqrt(3.0) / 2.0
		e := octaveNoise(noise, x, y, cfg)
		dist := math.Hypot(x, y) / span
		e *= edgeFalloff(dist, cfg.EdgePower)
		elev[i] = e
	}
	return elev
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, cfg Config) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	freq := cfg.Frequency

	for i := 0; i < cfg.Octaves; i++ {
		total += noise.Eval2(x*freq, y*freq) * amplitude
		maxVal += amplitude
		amplitude *= cfg.Persistence
		freq *= 2
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

// edgeFalloff reduces elevation near the mesh edge to create an ocean
// border around the landmass.
func edgeFalloff(dist, power float64) float64 {
	f := 1.0 - math.Pow(dist, power)
	if f < 0 {
		return 0
	}
	return f
}
