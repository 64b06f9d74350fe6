// Package config loads rivergen run configuration from YAML files.
// The river core never reads this directly; the CLI translates it into
// the explicit parameter bundles the core takes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mesh selects and sizes the demo mesh.
type Mesh struct {
	Kind   string `yaml:"kind"`   // "grid" or "hex"
	Width  int    `yaml:"width"`  // grid only
	Height int    `yaml:"height"` // grid only
	Radius int    `yaml:"radius"` // hex only
}

// Terrain controls demo elevation synthesis.
type Terrain struct {
	Seed       int64   `yaml:"seed"`
	WaterLevel float64 `yaml:"water_level"`
}

// Rivers mirrors the river generator's configuration bundle.
type Rivers struct {
	Count            int     `yaml:"count"`
	MinLength        int     `yaml:"min_length"`
	AllowNewLakes    *bool   `yaml:"allow_new_lakes"` // nil = default true
	HeadwaterLow     float64 `yaml:"headwater_low"`
	HeadwaterHigh    float64 `yaml:"headwater_high"`
	MinSourceSpacing int     `yaml:"min_source_spacing"`
	MeanderBias      float64 `yaml:"meander_bias"`
	FlatTolerance    int     `yaml:"flat_tolerance"`
	TributaryDensity float64 `yaml:"tributary_density"`
}

// File is one rivergen run configuration.
type File struct {
	Mesh    Mesh    `yaml:"mesh"`
	Terrain Terrain `yaml:"terrain"`
	Rivers  Rivers  `yaml:"rivers"`
	DBPath  string  `yaml:"db_path"` // empty = no persistence
}

// Default returns the built-in run configuration: a midsize grid with a
// handful of rivers.
func Default() File {
	return File{
		Mesh:    Mesh{Kind: "grid", Width: 96, Height: 64, Radius: 32},
		Terrain: Terrain{Seed: 42, WaterLevel: 0.30},
		Rivers:  Rivers{Count: 6},
	}
}

// Load reads a YAML run configuration, layering it over the defaults.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

func (f File) validate() error {
	switch f.Mesh.Kind {
	case "grid":
		if f.Mesh.Width < 4 || f.Mesh.Height < 4 {
			return fmt.Errorf("grid mesh %dx%d too small", f.Mesh.Width, f.Mesh.Height)
		}
	case "hex":
		if f.Mesh.Radius < 2 {
			return fmt.Errorf("hex mesh radius %d too small", f.Mesh.Radius)
		}
	default:
		return fmt.Errorf("unknown mesh kind %q", f.Mesh.Kind)
	}
	if f.Rivers.Count < 1 {
		return fmt.Errorf("river count %d, want at least 1", f.Rivers.Count)
	}
	return nil
}
