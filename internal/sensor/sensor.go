// Package sensor implements the craft's terrain-relative instruments: the
// surface altimeter and the rock proximity scanner. Sensors are pure
// functions over terrain and rock data plus a read position; they never
// mutate their inputs and treat missing rock data as "no rocks found".
package sensor

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/moon"
)

// RockReading is an annotated copy of a detected rock.
type RockReading struct {
	Rock      moon.Rock
	DistanceM float64 // Straight-line distance from the craft base, meters
}

// Altitude returns the vertical distance in meters between the craft base
// point (baseX, baseY) and the interpolated terrain surface at a horizontal
// read offset from the base. Positive means the surface is below the base.
func Altitude(t *moon.Terrain, baseX, baseY, readOffset, pxPerM float64) float64 {
	surfaceY := t.HeightAt(baseX + readOffset)
	return (surfaceY - baseY) / pxPerM
}

// RocksNear returns the rocks whose radius-expanded horizontal extent
// overlaps the tolerance window around world x, each annotated with the
// straight-line distance in meters from (x, baseY).
func RocksNear(rocks []moon.Rock, x, baseY, tolM, pxPerM float64) []RockReading {
	if len(rocks) == 0 {
		return nil
	}

	tolPx := tolM * pxPerM
	var found []RockReading
	for _, r := range rocks {
		dx := math.Abs(r.X - x)
		if dx > r.Radius+tolPx {
			continue
		}
		dy := r.Y - baseY
		found = append(found, RockReading{
			Rock:      r,
			DistanceM: math.Hypot(dx, dy) / pxPerM,
		})
	}
	return found
}

// Nearest returns the single closest rock within maxM meters of (x, baseY),
// or ok=false when none is in range.
func Nearest(rocks []moon.Rock, x, baseY, maxM, pxPerM float64) (RockReading, bool) {
	candidates := RocksNear(rocks, x, baseY, maxM, pxPerM)
	best := RockReading{DistanceM: math.Inf(1)}
	for _, c := range candidates {
		if c.DistanceM < best.DistanceM {
			best = c
		}
	}
	if best.DistanceM > maxM {
		return RockReading{}, false
	}
	return best, true
}

// InPath reports whether any rock lies within maxM meters of (x, baseY).
func InPath(rocks []moon.Rock, x, baseY, maxM, pxPerM float64) bool {
	_, ok := Nearest(rocks, x, baseY, maxM, pxPerM)
	return ok
}
