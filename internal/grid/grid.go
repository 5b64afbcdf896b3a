// Package grid provides flat row-major 2D value grids shared by the
// generation stages. The heightmap is the only cross-stage mutable grid;
// each stage is its sole writer while it runs.
package grid

// Heightmap is a mutable grid of signed elevation in meters.
type Heightmap struct {
	W, H int
	data []float64
}

// NewHeightmap allocates a zeroed heightmap. Non-positive dimensions yield an
// empty grid rather than panicking, so degenerate configs stay well-defined.
func NewHeightmap(w, h int) *Heightmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Heightmap{W: w, H: h, data: make([]float64, w*h)}
}

// At returns the elevation at (x, y).
func (g *Heightmap) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set writes the elevation at (x, y).
func (g *Heightmap) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// InBounds reports whether (x, y) lies on the grid.
func (g *Heightmap) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Values exposes the backing slice so callers can read/write directly.
func (g *Heightmap) Values() []float64 { return g.data }

// Clone returns an independent copy of the heightmap.
func (g *Heightmap) Clone() *Heightmap {
	c := &Heightmap{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Int stores a 2D grid of ints in row-major order.
type Int struct {
	W, H int
	data []int
}

// NewInt allocates a zeroed int grid.
func NewInt(w, h int) *Int {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Int{W: w, H: h, data: make([]int, w*h)}
}

// At returns the value at (x, y).
func (g *Int) At(x, y int) int { return g.data[y*g.W+x] }

// Set writes the value at (x, y).
func (g *Int) Set(x, y int, v int) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *Int) Fill(v int) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Values exposes the backing slice.
func (g *Int) Values() []int { return g.data }

// Float stores a 2D grid of float64s in row-major order.
type Float struct {
	W, H int
	data []float64
}

// NewFloat allocates a zeroed float grid.
func NewFloat(w, h int) *Float {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Float{W: w, H: h, data: make([]float64, w*h)}
}

// At returns the value at (x, y).
func (g *Float) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set writes the value at (x, y).
func (g *Float) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Values exposes the backing slice.
func (g *Float) Values() []float64 { return g.data }
