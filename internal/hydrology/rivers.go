// Package hydrology selects river sources on high terrain, traces them
// downhill, and carves their valleys into the heightmap.
package hydrology

import (
	"sort"

	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/grid"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/rng"
)

// Point is a tile coordinate on a river path.
type Point struct {
	X, Y int
}

// River is an ordered 8-neighbor walk from a mountain source toward the
// ocean, a pooled endpoint, or a confluence with an earlier river. Never
// mutated after generation.
type River struct {
	ID      int
	SourceX int
	SourceY int
	Path    []Point
}

const (
	sourceElevation  = 3000.0 // candidates must rise above this
	minPathLen       = 5
	minSourceSpacing = 900 // squared tile distance between chosen sources
	sourceAcceptProb = 0.7
	carveBase        = 20.0
	carveMouthBonus  = 80.0
)

var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// GenerateRivers picks sources greedily from the highest terrain down and
// traces each one. riverCount <= 0 derives a target from the map area.
// Callers pass the "hydrology" RNG fork. Some valid peaks are skipped on
// purpose (acceptance probability below) so ranges don't sprout a river on
// every summit. Paths shorter than minPathLen are discarded without counting
// against the target.
func GenerateRivers(hm *grid.Heightmap, r *rng.Source, riverCount int) []River {
	if hm == nil || hm.W <= 0 || hm.H <= 0 {
		return nil
	}

	target := riverCount
	if target <= 0 {
		target = hm.W * hm.H / 5000
		if target < 5 {
			target = 5
		}
	}

	type candidate struct {
		x, y int
		elev float64
	}
	var candidates []candidate
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			if e := hm.At(x, y); e > sourceElevation {
				candidates = append(candidates, candidate{x: x, y: y, elev: e})
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	// Stable sort keeps scan order on equal elevations, for determinism.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].elev > candidates[j].elev
	})

	riverTiles := make(map[Point]bool)
	var rivers []River
	var chosen []Point
	for _, c := range candidates {
		if len(rivers) >= target {
			break
		}
		tooClose := false
		for _, s := range chosen {
			dx := c.x - s.X
			dy := c.y - s.Y
			if dx*dx+dy*dy < minSourceSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		if r.Next() >= sourceAcceptProb {
			continue
		}
		chosen = append(chosen, Point{X: c.x, Y: c.y})

		path := traceRiver(hm, c.x, c.y, riverTiles)
		if len(path) < minPathLen {
			continue
		}
		rivers = append(rivers, River{
			ID:      len(rivers),
			SourceX: c.x,
			SourceY: c.y,
			Path:    path,
		})
		for _, p := range path {
			riverTiles[p] = true
		}
	}
	return rivers
}

// traceRiver walks steepest descent from the source. It stops when no
// strictly lower unvisited neighbor exists (pooled; no lake is modeled),
// when it steps onto an at-or-below sea level tile (ocean), or when it steps
// onto a tile owned by an earlier river (confluence). Bounded by W+H steps.
func traceRiver(hm *grid.Heightmap, sx, sy int, riverTiles map[Point]bool) []Point {
	maxSteps := hm.W + hm.H
	path := []Point{{X: sx, Y: sy}}
	visited := map[Point]bool{{X: sx, Y: sy}: true}
	cx, cy := sx, sy

	for step := 0; step < maxSteps; step++ {
		bestElev := hm.At(cx, cy)
		best := Point{}
		found := false
		for _, d := range neighbors8 {
			nx, ny := cx+d[0], cy+d[1]
			if !hm.InBounds(nx, ny) {
				continue
			}
			p := Point{X: nx, Y: ny}
			if visited[p] {
				continue
			}
			if e := hm.At(nx, ny); e < bestElev {
				bestElev = e
				best = p
				found = true
			}
		}
		if !found {
			break // pooled
		}
		path = append(path, best)
		visited[best] = true
		if bestElev <= 0 {
			break // reached ocean
		}
		if riverTiles[best] {
			break // confluence
		}
		cx, cy = best.X, best.Y
	}
	return path
}

// CarveValleys deepens each river channel in place, cutting harder near the
// mouth than the source. Carving never raises a tile; carved land bottoms
// out at sea level.
func CarveValleys(hm *grid.Heightmap, rivers []River) {
	if hm == nil {
		return
	}
	for _, river := range rivers {
		n := len(river.Path)
		for i, p := range river.Path {
			size := float64(i) / float64(n)
			if size > 1 {
				size = 1
			}
			v := hm.At(p.X, p.Y)
			carved := v - (carveBase + size*carveMouthBonus)
			if carved < 0 {
				carved = 0
			}
			if carved < v {
				hm.Set(p.X, p.Y, carved)
			}
		}
	}
}
