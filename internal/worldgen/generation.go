// Package worldgen builds the physical substrate of a world from a single
// seed: base noise terrain, tectonic uplift and rifting, river carving, and
// climate. Stages run strictly in sequence; the heightmap has exactly one
// writer at a time and no stage revisits an earlier stage's decisions.
package worldgen

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/climate"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/grid"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/hydrology"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/rng"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/tectonics"
)

// Config holds world generation parameters.
type Config struct {
	Width      int
	Height     int
	Seed       int64   // Random seed (0 = random)
	PlateCount int     // Tectonic plates (0 = derived from map area)
	RiverCount int     // Target rivers (0 = derived from map area)
	SeaLevel   float64 // Noise-space ocean threshold (0.0–1.0)
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Seed:     0,
		SeaLevel: 0.35,
	}
}

// SmallTestConfig returns a tiny world for rapid iteration.
func SmallTestConfig() Config {
	return Config{
		Width:    64,
		Height:   64,
		Seed:     42,
		SeaLevel: 0.35,
	}
}

// World bundles the finished substrate handed to downstream consumers
// (biome classification, flora/fauna placement, rendering). Everything but
// the heightmap is immutable once generated; the heightmap carries both the
// tectonic and valley-carving mutations.
type World struct {
	Seed      int64
	Config    Config
	Heightmap *grid.Heightmap
	Plates    tectonics.PlateMap
	Rivers    []hydrology.River
	Climate   *climate.Map
}

// Generate creates a complete world substrate. Deterministic for a fixed
// seed: each stage draws from its own named RNG fork, so no stage's
// consumption shifts another's results.
func Generate(cfg Config) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.SeaLevel <= 0 || cfg.SeaLevel >= 1 {
		cfg.SeaLevel = 0.35
	}

	w := &World{Seed: seed, Config: cfg}
	w.Heightmap = baseTerrain(cfg, seed)

	root := rng.New(seed)

	plateCount := cfg.PlateCount
	if plateCount <= 0 {
		plateCount = cfg.Width * cfg.Height / 10000
		if plateCount < 4 {
			plateCount = 4
		}
	}

	w.Plates = tectonics.GeneratePlates(cfg.Width, cfg.Height, plateCount, root.Fork("tectonics"))
	collision := tectonics.SimulateCollision(w.Plates, cfg.Width, cfg.Height)
	tectonics.ApplyToHeightmap(w.Heightmap, collision)

	w.Rivers = hydrology.GenerateRivers(w.Heightmap, root.Fork("hydrology"), cfg.RiverCount)
	hydrology.CarveValleys(w.Heightmap, w.Rivers)

	w.Climate = climate.Generate(w.Heightmap)
	return w
}

// baseTerrain builds the pre-tectonic substrate: multi-octave simplex noise
// shaped by a continental edge falloff, then mapped from noise space to
// meters with SeaLevel at the shoreline. Ocean floors scale down to -1000 m
// so the whole map stays inside the post-tectonic elevation contract.
func baseTerrain(cfg Config, seed int64) *grid.Heightmap {
	hm := grid.NewHeightmap(cfg.Width, cfg.Height)
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return hm
	}

	noise := opensimplex.NewNormalized(seed)
	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height) / 2
	maxDist := math.Hypot(cx, cy)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			elev := octaveNoise(noise, float64(x), float64(y), 4, 0.02, 0.5)

			// Continental shaping: sink the map edges into ocean.
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			falloff := 1 - math.Pow(d, 3.5)
			if falloff < 0 {
				falloff = 0
			}
			elev *= falloff

			n := elev - cfg.SeaLevel
			if n >= 0 {
				hm.Set(x, y, n*6000)
			} else {
				hm.Set(x, y, n/cfg.SeaLevel*1000)
			}
		}
	}
	return hm
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
