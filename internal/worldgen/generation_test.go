package worldgen

import (
	"reflect"
	"testing"
)

func TestGenerateDeterminism(t *testing.T) {
	cfg := SmallTestConfig()
	a := Generate(cfg)
	b := Generate(cfg)

	if a.Seed != b.Seed {
		t.Fatalf("seeds differ: %d vs %d", a.Seed, b.Seed)
	}
	if !reflect.DeepEqual(a.Heightmap.Values(), b.Heightmap.Values()) {
		t.Fatal("heightmaps differ for identical configs")
	}
	if !reflect.DeepEqual(a.Plates.Plates, b.Plates.Plates) {
		t.Fatal("plates differ for identical configs")
	}
	if !reflect.DeepEqual(a.Plates.Assignment.Values(), b.Plates.Assignment.Values()) {
		t.Fatal("plate assignments differ for identical configs")
	}
	if !reflect.DeepEqual(a.Rivers, b.Rivers) {
		t.Fatal("rivers differ for identical configs")
	}
	if !reflect.DeepEqual(a.Climate.Cells, b.Climate.Cells) {
		t.Fatal("climate differs for identical configs")
	}
}

func TestGenerateElevationBounds(t *testing.T) {
	w := Generate(SmallTestConfig())
	for i, v := range w.Heightmap.Values() {
		if v < -1000 || v > 10000 {
			t.Fatalf("tile %d elevation %v outside [-1000, 10000]", i, v)
		}
	}
}

func TestGenerateShape(t *testing.T) {
	cfg := SmallTestConfig()
	w := Generate(cfg)

	if w.Heightmap.W != cfg.Width || w.Heightmap.H != cfg.Height {
		t.Fatalf("heightmap is %dx%d, want %dx%d", w.Heightmap.W, w.Heightmap.H, cfg.Width, cfg.Height)
	}
	if len(w.Climate.Cells) != cfg.Width*cfg.Height {
		t.Fatalf("climate has %d cells, want %d", len(w.Climate.Cells), cfg.Width*cfg.Height)
	}

	// 64x64 derives the minimum plate count.
	if len(w.Plates.Plates) != 4 {
		t.Fatalf("derived %d plates, want 4", len(w.Plates.Plates))
	}
	for i, id := range w.Plates.Assignment.Values() {
		if id < 0 || id >= len(w.Plates.Plates) {
			t.Fatalf("tile %d assigned invalid plate %d", i, id)
		}
	}
}

func TestGenerateRiverValidity(t *testing.T) {
	w := Generate(SmallTestConfig())
	for _, r := range w.Rivers {
		if len(r.Path) < 5 {
			t.Fatalf("river %d has %d points, want >= 5", r.ID, len(r.Path))
		}
		for i := 1; i < len(r.Path); i++ {
			dx := r.Path[i].X - r.Path[i-1].X
			dy := r.Path[i].Y - r.Path[i-1].Y
			if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Fatalf("river %d points %d and %d are not 8-neighbors", r.ID, i-1, i)
			}
		}
	}
}

func TestGenerateZeroSize(t *testing.T) {
	cfg := Config{Width: 0, Height: 0, Seed: 1, SeaLevel: 0.35}
	w := Generate(cfg)
	if len(w.Heightmap.Values()) != 0 {
		t.Fatal("zero-size config produced heightmap cells")
	}
	if len(w.Rivers) != 0 {
		t.Fatal("zero-size config produced rivers")
	}
	if len(w.Climate.Cells) != 0 {
		t.Fatal("zero-size config produced climate cells")
	}
	if len(w.Plates.Plates) != 0 {
		t.Fatal("zero-size config produced plates")
	}
}

func TestRandomSeedAssigned(t *testing.T) {
	cfg := SmallTestConfig()
	cfg.Seed = 0
	w := Generate(cfg)
	if w.Seed == 0 {
		t.Fatal("seed 0 was not replaced with a random seed")
	}
}

func TestBaseTerrainEdgesAreOcean(t *testing.T) {
	cfg := SmallTestConfig()
	hm := baseTerrain(cfg, 42)
	corners := [][2]int{{0, 0}, {cfg.Width - 1, 0}, {0, cfg.Height - 1}, {cfg.Width - 1, cfg.Height - 1}}
	for _, c := range corners {
		if v := hm.At(c[0], c[1]); v > 0 {
			t.Fatalf("corner (%d,%d) elevation %v, want ocean", c[0], c[1], v)
		}
	}
}
