// Command rivergen generates a procedural river network over a demo
// terrain mesh and reports the result.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/talgya/riverforge/internal/config"
	"github.com/talgya/riverforge/internal/mesh"
	"github.com/talgya/riverforge/internal/persistence"
	"github.com/talgya/riverforge/internal/rivers"
	"github.com/talgya/riverforge/internal/terrain"
)

func main() {
	configPath := flag.String("config", "", "YAML run configuration (optional)")
	dbPath := flag.String("db", "", "SQLite path for run persistence (overrides config)")
	preview := flag.Bool("preview", false, "print an ASCII map of the run (grid meshes only)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cf := config.Default()
	if *configPath != "" {
		var err error
		cf, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}
	if *dbPath != "" {
		cf.DBPath = *dbPath
	}

	// ── Mesh + elevation ──────────────────────────────────────────────
	tcfg := terrain.DefaultConfig(cf.Terrain.Seed)
	var (
		g        *mesh.Graph
		elev     []float64
		meshDesc string
	)
	switch cf.Mesh.Kind {
	case "hex":
		var coords []mesh.HexCoord
		g, coords = mesh.NewHexDisc(cf.Mesh.Radius)
		elev = terrain.ElevationHex(coords, cf.Mesh.Radius, tcfg)
		meshDesc = fmt.Sprintf("hex r=%d", cf.Mesh.Radius)
	default:
		g = mesh.NewGrid(cf.Mesh.Width, cf.Mesh.Height)
		elev = terrain.ElevationGrid(cf.Mesh.Width, cf.Mesh.Height, tcfg)
		meshDesc = fmt.Sprintf("grid %dx%d", cf.Mesh.Width, cf.Mesh.Height)
	}
	slog.Info("mesh ready", "mesh", meshDesc,
		"cells", humanize.Comma(int64(g.CellCount())), "seed", cf.Terrain.Seed)

	// ── River generation ──────────────────────────────────────────────
	rcfg := riverConfig(cf.Rivers)
	res, err := rivers.Generate(g, elev, cf.Terrain.WaterLevel, rcfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	riverCells := 0
	for _, b := range res.HasRiver {
		if b != 0 {
			riverCells++
		}
	}
	slog.Info("generation complete",
		"requested", res.Requested,
		"generated", res.Generated,
		"paths", len(res.Rivers),
		"river_cells", humanize.Comma(int64(riverCells)),
		"new_lakes", len(res.NewLakes),
	)
	for _, line := range res.Log {
		slog.Info(line)
	}

	if *preview && cf.Mesh.Kind == "grid" {
		printPreview(cf.Mesh.Width, cf.Mesh.Height, elev, cf.Terrain.WaterLevel, res)
	}

	// ── Persistence ───────────────────────────────────────────────────
	if cf.DBPath != "" {
		db, err := persistence.Open(cf.DBPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		runID, err := db.SaveRun(meshDesc, g.CellCount(), rcfg, res)
		if err != nil {
			slog.Error("failed to save run", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Run %s saved to %s\n", runID, cf.DBPath)
	}
}

// riverConfig translates the YAML layer into the core's immutable
// parameter bundle, leaving zero fields to the documented defaults.
func riverConfig(r config.Rivers) rivers.Config {
	cfg := rivers.DefaultConfig(r.Count)
	if r.MinLength > 0 {
		cfg.MinRiverLength = r.MinLength
	}
	if r.AllowNewLakes != nil {
		cfg.AllowNewLakes = *r.AllowNewLakes
	}
	if r.HeadwaterLow > 0 {
		cfg.HeadwaterLow = r.HeadwaterLow
	}
	if r.HeadwaterHigh > 0 {
		cfg.HeadwaterHigh = r.HeadwaterHigh
	}
	if r.MinSourceSpacing > 0 {
		cfg.MinSourceSpacing = r.MinSourceSpacing
	}
	if r.MeanderBias > 0 {
		cfg.MeanderBias = r.MeanderBias
	}
	if r.FlatTolerance > 0 {
		cfg.FlatTolerance = r.FlatTolerance
	}
	if r.TributaryDensity > 0 {
		cfg.TributaryDensity = r.TributaryDensity
	}
	return cfg
}

// printPreview draws a coarse text map: ~ ocean, o lake, # river,
// elevation shades for dry land.
func printPreview(width, height int, elev []float64, waterLevel float64, res *rivers.Result) {
	lake := make(map[int32]bool, len(res.NewLakes))
	for _, c := range res.NewLakes {
		lake[c] = true
	}
	shades := []byte(" .:-=+*%")

	for y := 0; y < height; y++ {
		row := make([]byte, width)
		for x := 0; x < width; x++ {
			c := int32(y*width + x)
			switch {
			case res.HasRiver[c] == 1 && elev[c] > waterLevel && !lake[c]:
				row[x] = '#'
			case lake[c]:
				row[x] = 'o'
			case elev[c] <= waterLevel:
				row[x] = '~'
			default:
				idx := int(elev[c] * float64(len(shades)))
				if idx >= len(shades) {
					idx = len(shades) - 1
				}
				row[x] = shades[idx]
			}
		}
		fmt.Println(string(row))
	}
}
