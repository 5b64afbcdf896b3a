// Package climate derives per-tile temperature and rainfall from latitude,
// elevation, and flood-fill distance to the nearest ocean tile.
package climate

import (
	"math"

	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/grid"
)

// Unreachable marks ocean distance on maps with no ocean at all. Kept as an
// int sentinel so the temperature and rainfall formulas can branch on it
// instead of feeding an infinity through float math.
const Unreachable = math.MaxInt32

// Data is the finished climate of a single tile.
type Data struct {
	Temperature float64 // °C
	Rainfall    float64 // cm/year
}

// Map holds per-tile climate in row-major order. Read-only once generated.
type Map struct {
	W, H  int
	Cells []Data
}

// At returns the climate at (x, y).
func (m *Map) At(x, y int) Data { return m.Cells[y*m.W+x] }

const (
	lapseRatePer1000m = 6.5
	moderationTiles   = 30.0 // coastal moderation fades out over this distance
	moderationDegrees = 5.0
	moisturePerTile   = 8.0
	moistureMax       = 200.0
	shadowScanTiles   = 30
	shadowPerPeak     = 0.15
	shadowMax         = 0.8
	peakElevation     = 4000.0
)

// Generate computes the climate grid over a finished heightmap. Each tile is
// independent once the ocean distance field is built.
func Generate(hm *grid.Heightmap) *Map {
	m := &Map{W: hm.W, H: hm.H}
	if hm.W <= 0 || hm.H <= 0 {
		return m
	}
	m.Cells = make([]Data, hm.W*hm.H)

	dist := oceanDistance(hm)

	for y := 0; y < hm.H; y++ {
		latRatio := 1 - 2*math.Abs(float64(y)/float64(hm.H)-0.5)
		for x := 0; x < hm.W; x++ {
			elev := hm.At(x, y)
			d := dist.At(x, y)
			m.Cells[y*hm.W+x] = Data{
				Temperature: temperature(latRatio, elev, d),
				Rainfall:    rainfall(hm, x, y, latRatio, elev, d),
			}
		}
	}
	return m
}

// oceanDistance runs a multi-source BFS over 4-neighbors from every tile at
// or below sea level. Land tiles get the shortest tile-count distance; maps
// with no ocean stay Unreachable everywhere.
func oceanDistance(hm *grid.Heightmap) *grid.Int {
	dist := grid.NewInt(hm.W, hm.H)
	dist.Fill(Unreachable)

	var queue [][2]int
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			if hm.At(x, y) <= 0 {
				dist.Set(x, y, 0)
				queue = append(queue, [2]int{x, y})
			}
		}
	}

	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		d := dist.At(p[0], p[1])
		for _, dir := range dirs {
			nx, ny := p[0]+dir[0], p[1]+dir[1]
			if nx < 0 || nx >= hm.W || ny < 0 || ny >= hm.H {
				continue
			}
			if dist.At(nx, ny) <= d+1 {
				continue
			}
			dist.Set(nx, ny, d+1)
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return dist
}

// temperature blends a latitude base with coastal moderation, then subtracts
// lapse-rate cooling for elevation above sea level. Moderation cools already
// hot tiles and warms cold ones, so coasts trend temperate either way.
func temperature(latRatio, elev float64, dist int) float64 {
	base := -30 + latRatio*65

	if dist != Unreachable {
		factor := 1 - float64(dist)/moderationTiles
		if factor < 0 {
			factor = 0
		}
		moderation := factor * moderationDegrees
		if base > 20 {
			base -= moderation
		} else {
			base += moderation
		}
	}

	if elev > 0 {
		base -= elev / 1000 * lapseRatePer1000m
	}
	return round1(base)
}

// rainfall combines ocean moisture, an equatorial boost, windward uplift,
// and a westward rain-shadow scan. Prevailing wind is fixed west-to-east.
// Water tiles get 0.
func rainfall(hm *grid.Heightmap, x, y int, latRatio, elev float64, dist int) float64 {
	if elev < 0 {
		return 0
	}

	moisture := 0.0
	if dist != Unreachable {
		moisture = moistureMax - float64(dist)*moisturePerTile
		if moisture < 0 {
			moisture = 0
		}
	}

	boost := 0.0
	if latRatio > 0.7 {
		boost = (latRatio - 0.7) * 200
	}

	shadow := 0.0
	for i := 1; i <= shadowScanTiles && x-i >= 0; i++ {
		if hm.At(x-i, y) > peakElevation {
			shadow += shadowPerPeak
			if shadow >= shadowMax {
				shadow = shadowMax
				break
			}
		}
	}

	windward := 0.0
	if elev > 1000 && elev < peakElevation && shadow < 0.3 {
		windward = elev / 1000 * 20
	}

	rain := (moisture + boost + windward) * (1 - shadow)
	if rain < 0 {
		rain = 0
	}
	return round1(rain)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
