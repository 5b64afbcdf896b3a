package tectonics

import (
	"math"

	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/grid"
)

// Uplift and rift scaling applied per unit of boundary stress.
const (
	upliftPerStrength = 3000.0
	riftPerStrength   = 1500.0
	maxElevation      = 10000.0
	minElevation      = -1000.0
)

var cardinal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// SimulateCollision computes per-tile boundary stress from relative plate
// motion. For each cardinal neighbor on a different plate, the relative
// motion vector is projected onto the normalized center-to-center direction;
// a positive sum means the plates close on each other (convergent), negative
// means they pull apart (divergent). Interior tiles are 0. The result is
// clamped to [-1, 1].
func SimulateCollision(pm PlateMap, width, height int) *grid.Float {
	out := grid.NewFloat(width, height)
	if width <= 0 || height <= 0 || len(pm.Plates) == 0 {
		return out
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			myID := pm.Assignment.At(x, y)
			if myID == NoPlate {
				continue
			}
			mine := pm.Plates[myID]

			total := 0.0
			for _, d := range cardinal {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				otherID := pm.Assignment.At(nx, ny)
				if otherID == myID || otherID == NoPlate {
					continue
				}
				other := pm.Plates[otherID]

				bx := float64(other.CenterX - mine.CenterX)
				by := float64(other.CenterY - mine.CenterY)
				length := math.Hypot(bx, by)
				if length == 0 {
					length = 1 // coincident centers
				}
				bx /= length
				by /= length

				relX := mine.Motion.DX - other.Motion.DX
				relY := mine.Motion.DY - other.Motion.DY
				total += relX*bx + relY*by
			}

			if total > 1 {
				total = 1
			} else if total < -1 {
				total = -1
			}
			out.Set(x, y, total)
		}
	}
	return out
}

// ApplyToHeightmap raises convergent tiles and sinks divergent ones in place.
// The modifier is local: no smoothing or diffusion across neighbors. Zero
// stress leaves a tile untouched.
func ApplyToHeightmap(hm *grid.Heightmap, collision *grid.Float) {
	if hm == nil || collision == nil {
		return
	}
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			s := collision.At(x, y)
			switch {
			case s > 0:
				v := hm.At(x, y) + s*upliftPerStrength
				if v > maxElevation {
					v = maxElevation
				}
				hm.Set(x, y, v)
			case s < 0:
				v := hm.At(x, y) + s*riftPerStrength
				if v < minElevation {
					v = minElevation
				}
				hm.Set(x, y, v)
			}
		}
	}
}
