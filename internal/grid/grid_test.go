package grid

import "testing"

func TestHeightmapReadWrite(t *testing.T) {
	g := NewHeightmap(4, 3)
	g.Set(2, 1, 1234.5)
	if v := g.At(2, 1); v != 1234.5 {
		t.Fatalf("At(2,1) = %v, want 1234.5", v)
	}
	if !g.InBounds(3, 2) || g.InBounds(4, 2) || g.InBounds(-1, 0) {
		t.Fatal("InBounds misreports grid edges")
	}
}

func TestHeightmapCloneIsIndependent(t *testing.T) {
	g := NewHeightmap(2, 2)
	g.Set(0, 0, 5)
	c := g.Clone()
	c.Set(0, 0, 99)
	if g.At(0, 0) != 5 {
		t.Fatalf("mutating clone changed original: %v", g.At(0, 0))
	}
}

func TestDegenerateDimensions(t *testing.T) {
	g := NewHeightmap(0, 10)
	if g.W != 0 || len(g.Values()) != 0 {
		t.Fatalf("zero-width heightmap not empty: W=%d len=%d", g.W, len(g.Values()))
	}
	gi := NewInt(-3, 5)
	if gi.W != 0 || len(gi.Values()) != 0 {
		t.Fatalf("negative-width int grid not empty: W=%d len=%d", gi.W, len(gi.Values()))
	}
}

func TestIntFill(t *testing.T) {
	g := NewInt(3, 3)
	g.Fill(-1)
	for i, v := range g.Values() {
		if v != -1 {
			t.Fatalf("cell %d = %d after Fill(-1)", i, v)
		}
	}
}
