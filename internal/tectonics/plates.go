// Package tectonics partitions the map into rigid plates and carves mountains
// and rifts from the stress along their boundaries.
package tectonics

import (
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/grid"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/rng"
)

// NoPlate is the assignment sentinel for maps generated with zero plates.
// Downstream passes treat NoPlate tiles as plate interior (zero stress).
const NoPlate = -1

// Vec2 is a plate motion vector in arbitrary per-tick units.
type Vec2 struct {
	DX, DY float64
}

// Plate is a region of crust sharing one rigid motion vector.
type Plate struct {
	ID      int
	CenterX int
	CenterY int
	Motion  Vec2
	Oceanic bool
}

// PlateMap pairs the plate list with the per-tile nearest-center assignment.
// Immutable once generated.
type PlateMap struct {
	Plates     []Plate
	Assignment *grid.Int
}

// GeneratePlates scatters plateCount plate centers and assigns every tile to
// its nearest center by squared Euclidean distance, ties going to the lowest
// plate id. Callers pass the "tectonics" RNG fork so plate layout is
// independent of randomness consumed elsewhere.
func GeneratePlates(width, height, plateCount int, r *rng.Source) PlateMap {
	pm := PlateMap{Assignment: grid.NewInt(width, height)}
	pm.Assignment.Fill(NoPlate)
	if width <= 0 || height <= 0 || plateCount <= 0 {
		return pm
	}

	pm.Plates = make([]Plate, plateCount)
	for i := range pm.Plates {
		pm.Plates[i] = Plate{
			ID:      i,
			CenterX: r.NextInt(0, width-1),
			CenterY: r.NextInt(0, height-1),
			Motion:  Vec2{DX: r.NextFloat(-1, 1), DY: r.NextFloat(-1, 1)},
			Oceanic: r.Next() < 0.4,
		}
	}

	// Brute-force Voronoi assignment. O(w*h*plateCount) but plate counts are
	// small and this runs once per world.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			best := 0
			bestDist := -1
			for _, p := range pm.Plates {
				dx := x - p.CenterX
				dy := y - p.CenterY
				d := dx*dx + dy*dy
				if bestDist < 0 || d < bestDist {
					bestDist = d
					best = p.ID
				}
			}
			pm.Assignment.Set(x, y, best)
		}
	}
	return pm
}
