// Command worldgen generates the physical substrate of a fantasy world —
// tectonic elevation, rivers, and climate — from a single seed, and
// optionally stores the result in SQLite for downstream consumers.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/persistence"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/worldgen"
)

func main() {
	var (
		seed   = flag.Int64("seed", 0, "world seed (0 = random)")
		width  = flag.Int("width", 256, "map width in tiles")
		height = flag.Int("height", 256, "map height in tiles")
		plates = flag.Int("plates", 0, "tectonic plate count (0 = derived from area)")
		rivers = flag.Int("rivers", 0, "target river count (0 = derived from area)")
		dbPath = flag.String("db", "data/worlds.db", "sqlite path (empty = don't save)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := worldgen.DefaultConfig()
	cfg.Seed = *seed
	cfg.Width = *width
	cfg.Height = *height
	cfg.PlateCount = *plates
	cfg.RiverCount = *rivers

	slog.Info("generating world substrate",
		"width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)

	w := worldgen.Generate(cfg)

	land, ocean := 0, 0
	peak := 0.0
	for _, e := range w.Heightmap.Values() {
		if e > 0 {
			land++
		} else {
			ocean++
		}
		if e > peak {
			peak = e
		}
	}

	slog.Info("terrain",
		"land", humanize.Comma(int64(land)),
		"ocean", humanize.Comma(int64(ocean)),
		"peak_m", int(peak))
	slog.Info("tectonics", "plates", len(w.Plates.Plates))
	slog.Info("hydrology", "rivers", len(w.Rivers))

	if *dbPath == "" {
		return
	}

	if dir := filepath.Dir(*dbPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	id, err := db.SaveWorld(w)
	if err != nil {
		slog.Error("failed to save world", "error", err)
		os.Exit(1)
	}
	slog.Info("done", "world_id", id, "seed", w.Seed,
		"tiles", humanize.Comma(int64(cfg.Width*cfg.Height)))
}
