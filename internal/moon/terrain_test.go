package moon

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
)

func worldConfig() config.WorldConfig {
	return config.DefaultLanderConfig().World
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := worldConfig()

	t1 := Generate(cfg, 42)
	t2 := Generate(cfg, 42)

	if t1.SampleCount() != t2.SampleCount() {
		t.Fatalf("sample counts differ: %d vs %d", t1.SampleCount(), t2.SampleCount())
	}
	for i := 0; i < t1.SampleCount(); i++ {
		if t1.Sample(i) != t2.Sample(i) {
			t.Fatalf("sample %d differs: %v vs %v", i, t1.Sample(i), t2.Sample(i))
		}
	}
}

func TestGenerateSeedVariation(t *testing.T) {
	cfg := worldConfig()

	t1 := Generate(cfg, 1)
	t2 := Generate(cfg, 2)

	same := true
	for i := 0; i < t1.SampleCount(); i++ {
		if t1.Sample(i) != t2.Sample(i) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical terrain")
	}
}

func TestGenerateDimensions(t *testing.T) {
	cfg := worldConfig()
	terrain := Generate(cfg, 7)

	wantSamples := cfg.TerrainLength / cfg.PixelStep
	if terrain.SampleCount() != wantSamples {
		t.Errorf("SampleCount = %d, want %d", terrain.SampleCount(), wantSamples)
	}
	if terrain.Length() != float64(cfg.TerrainLength) {
		t.Errorf("Length = %v, want %d", terrain.Length(), cfg.TerrainLength)
	}
	if terrain.Step() != cfg.PixelStep {
		t.Errorf("Step = %d, want %d", terrain.Step(), cfg.PixelStep)
	}
}

func TestGenerateSurfaceInsideWorld(t *testing.T) {
	cfg := worldConfig()
	terrain := Generate(cfg, 99)

	// Base profile sits 100px above the floor; craters can carve at most
	// 50px per bowl and stack rims at most 16px per crater.
	for i := 0; i < terrain.SampleCount(); i++ {
		y := terrain.Sample(i)
		if y < 750 || y > 1200 {
			t.Fatalf("sample %d = %v, outside the plausible surface band", i, y)
		}
	}
}

func TestHeightAtInterpolation(t *testing.T) {
	cfg := worldConfig()
	terrain := Generate(cfg, 3)
	step := float64(terrain.Step())

	// Exact sample positions return the sample.
	for _, i := range []int{0, 1, 100, terrain.SampleCount() - 1} {
		x := float64(i) * step
		if got := terrain.HeightAt(x); got != terrain.Sample(i) {
			t.Errorf("HeightAt(%v) = %v, want sample %v", x, got, terrain.Sample(i))
		}
	}

	// The midpoint between two samples is their mean.
	mid := terrain.HeightAt(step / 2)
	wantMid := (terrain.Sample(0) + terrain.Sample(1)) / 2
	if math.Abs(mid-wantMid) > 1e-9 {
		t.Errorf("HeightAt(midpoint) = %v, want %v", mid, wantMid)
	}
}

func TestHeightAtEdgeClamping(t *testing.T) {
	cfg := worldConfig()
	terrain := Generate(cfg, 3)

	if got := terrain.HeightAt(-50); got != terrain.Sample(0) {
		t.Errorf("HeightAt(-50) = %v, want first sample %v", got, terrain.Sample(0))
	}
	last := terrain.Sample(terrain.SampleCount() - 1)
	if got := terrain.HeightAt(terrain.Length() + 500); got != last {
		t.Errorf("HeightAt(beyond) = %v, want last sample %v", got, last)
	}
}

func TestSlopeFlat(t *testing.T) {
	terrain := Flat(worldConfig(), 900)

	for _, x := range []float64{0, 100, 5000, 14000} {
		if got := terrain.SlopeAt(x); got != 0 {
			t.Errorf("SlopeAt(%v) = %v on flat terrain, want 0", x, got)
		}
	}
}

func TestSlopeSign(t *testing.T) {
	cfg := worldConfig()
	terrain := Flat(cfg, 900)

	// Ground rising toward larger x (surface y decreasing) gives a
	// positive slope.
	for i := 100; i < 120; i++ {
		terrain.samples[i] = 900 - float64(i-100)*2
	}
	x := float64(110 * cfg.PixelStep)
	if got := terrain.SlopeAt(x); got <= 0 {
		t.Errorf("SlopeAt(%v) = %v, want positive for ground rising to the right", x, got)
	}
}

func TestSolid(t *testing.T) {
	terrain := Flat(worldConfig(), 900)

	if terrain.Solid(100, 899) {
		t.Error("pixel above the surface should not be solid")
	}
	if !terrain.Solid(100, 900) {
		t.Error("pixel at the surface should be solid")
	}
	if !terrain.Solid(100, 950) {
		t.Error("pixel below the surface should be solid")
	}
	// Below the world floor is always solid, outside the range never
	if !terrain.Solid(100, 2000) {
		t.Error("below world floor should be solid")
	}
	if terrain.Solid(-5, 950) {
		t.Error("left of the terrain should not be solid")
	}
}

func TestOverlapSilhouette(t *testing.T) {
	terrain := Flat(worldConfig(), 900)

	b := NewBitmap(4, 4)
	b.Set(1, 1)
	b.Set(2, 3)

	// Entirely above the surface: no overlap
	if _, _, ok := terrain.OverlapSilhouette(b, 100, 800); ok {
		t.Error("bitmap above the surface should not overlap")
	}

	// Lowest set pixel (2,3) reaches the surface first
	px, py, ok := terrain.OverlapSilhouette(b, 100, 897)
	if !ok {
		t.Fatal("expected overlap at the surface")
	}
	if px != 102 || py != 900 {
		t.Errorf("first overlap at (%d,%d), want (102,900)", px, py)
	}
}
