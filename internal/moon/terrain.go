// Package moon provides the terrain height map, its occupancy queries, the
// silhouette bitmaps used for contact detection, and the rock field.
// Everything here is immutable after generation and safe to share across the
// integrator, the contact state machine and the sensors.
package moon

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// slopeHalfWindow is the number of samples on each side used to estimate the
// local surface tangent.
const slopeHalfWindow = 5

// Terrain is a procedurally generated surface profile.
// Samples store the surface y in world pixels (y grows downward) at a fixed
// horizontal spacing.
type Terrain struct {
	samples []float64
	step    int
	height  int
}

// Generate creates the height map: a layered sinusoid base with a number of
// craters carved in (raised rim, sunken bowl). The same seed always yields
// the same terrain.
func Generate(cfg config.WorldConfig, seed int64) *Terrain {
	rng := rand.New(rand.NewSource(seed))

	n := cfg.TerrainLength / cfg.PixelStep
	base := float64(cfg.WorldHeight - 100)
	samples := make([]float64, n)
	for i := range samples {
		fi := float64(i)
		samples[i] = base + 20*math.Sin(fi*0.01) + 10*math.Sin(fi*0.05+math.Pi/3)
	}

	for c := 0; c < cfg.CraterCount; c++ {
		center := 30 + rng.Intn(n-60)
		w := 12 + rng.Intn(13)
		depth := float64(20 + rng.Intn(31))
		rim := float64(6 + rng.Intn(11))
		for i := -w * 2; i <= w*2; i++ {
			idx := center + i
			if idx < 0 || idx >= n {
				continue
			}
			dist := math.Abs(float64(i)) / float64(w)
			switch {
			case dist <= 1:
				// Bowl: deeper ground means larger y
				samples[idx] += (1 - dist*dist) * depth
			case dist <= 2:
				// Rim lip just outside the bowl
				d := 1 - (dist - 1)
				samples[idx] -= d * d * rim
			}
		}
	}

	return &Terrain{samples: samples, step: cfg.PixelStep, height: cfg.WorldHeight}
}

// Flat creates a terrain with a constant surface height. Used for calibration
// scenarios and tests where the slope must be exactly zero.
func Flat(cfg config.WorldConfig, surfaceY float64) *Terrain {
	n := cfg.TerrainLength / cfg.PixelStep
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = surfaceY
	}
	return &Terrain{samples: samples, step: cfg.PixelStep, height: cfg.WorldHeight}
}

// Step returns the horizontal sample spacing in pixels.
func (t *Terrain) Step() int { return t.step }

// SampleCount returns the number of height samples.
func (t *Terrain) SampleCount() int { return len(t.samples) }

// Length returns the horizontal extent of the terrain in pixels.
func (t *Terrain) Length() float64 { return float64(len(t.samples) * t.step) }

// Sample returns the raw surface y at the given sample index, clamped to the
// valid range.
func (t *Terrain) Sample(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i > len(t.samples)-1 {
		i = len(t.samples) - 1
	}
	return t.samples[i]
}

// HeightAt returns the linearly interpolated surface y at world x.
// x outside the sampled range clamps to the nearest sample; the query never
// fails.
func (t *Terrain) HeightAt(x float64) float64 {
	idx := x / float64(t.step)
	left := int(math.Floor(idx))
	right := int(math.Ceil(idx))

	yLeft := t.Sample(left)
	yRight := t.Sample(right)
	if left == right || left < 0 || right > len(t.samples)-1 {
		// At exact samples and beyond the edges there is nothing to blend.
		if idx < 0 {
			return t.Sample(0)
		}
		if idx > float64(len(t.samples)-1) {
			return t.Sample(len(t.samples) - 1)
		}
		return yLeft
	}
	frac := idx - float64(left)
	return yLeft*(1-frac) + yRight*frac
}

// SlopeAt returns the signed surface slope in degrees at world x, estimated
// from two samples offset by slopeHalfWindow on each side. Positive slope
// means the ground rises toward larger x.
func (t *Terrain) SlopeAt(x float64) float64 {
	center := int(x) / t.step
	left := Maxi(0, center-slopeHalfWindow)
	right := Mini(len(t.samples)-1, center+slopeHalfWindow)
	dx := float64((right - left) * t.step)
	if dx == 0 {
		return 0
	}
	dy := t.samples[left] - t.samples[right]
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// Solid reports whether the world pixel (x, y) is inside the ground.
// Uses the column occupancy of the nearest sample, mirroring the rasterized
// collision surface.
func (t *Terrain) Solid(x, y int) bool {
	if y >= t.height {
		return true
	}
	if x < 0 || x >= int(t.Length()) {
		return false
	}
	return float64(y) >= t.samples[x/t.step]
}

// OverlapSilhouette tests an oriented silhouette placed with its top-left at
// world (worldX, worldY) against the terrain occupancy. It returns the first
// intersecting pixel in world coordinates, scanning row-major, or ok=false.
func (t *Terrain) OverlapSilhouette(b *Bitmap, worldX, worldY int) (int, int, bool) {
	for by := 0; by < b.Height(); by++ {
		for bx := 0; bx < b.Width(); bx++ {
			if !b.At(bx, by) {
				continue
			}
			px, py := worldX+bx, worldY+by
			if t.Solid(px, py) {
				return px, py, true
			}
		}
	}
	return 0, 0, false
}
