package moon

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// RockKind partitions rocks by collision semantics.
type RockKind int

const (
	// KindDecorative rocks are visual only and never collide.
	KindDecorative RockKind = iota
	// KindHazard rocks are fatal on contact.
	KindHazard
	// KindSpecial rocks can be sampled by a soft landing on top of them.
	KindSpecial
)

// String returns the kind name.
func (k RockKind) String() string {
	switch k {
	case KindDecorative:
		return "decorative"
	case KindHazard:
		return "hazard"
	case KindSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Rock is a single boulder on the surface.
// X, Y is the rock center in world pixels; Radius is the visual radius in
// pixels. The collision mask uses a reduced effective radius so that grazing
// the sprite's empty corners does not register.
type Rock struct {
	X, Y   float64
	Radius float64
	Kind   RockKind
}

// hitRadiusFactor shrinks the visual radius for collision purposes.
const hitRadiusFactor = 0.6

// HitRadius returns the collision radius in pixels.
func (r Rock) HitRadius() float64 {
	return r.Radius * hitRadiusFactor
}

// Collidable reports whether the rock participates in collision checks.
func (r Rock) Collidable() bool {
	return r.Kind != KindDecorative
}

// Mask returns the circular collision bitmap for this rock.
func (r Rock) Mask() *Bitmap {
	return Circle(r.HitRadius())
}

// PlaceRocks populates the rock field for the given terrain. Placement must
// run after terrain generation: each rock is dropped at a random x and sunk a
// random amount into the local surface. The same seed yields the same field.
func PlaceRocks(t *Terrain, cfg config.RocksConfig, seed int64) []Rock {
	rng := rand.New(rand.NewSource(seed))

	rocks := make([]Rock, 0, cfg.Decorative+cfg.Hazard+cfg.Special)
	for i := 0; i < cfg.Decorative; i++ {
		rocks = append(rocks, dropRock(t, rng, KindDecorative, 2, 6))
	}
	for i := 0; i < cfg.Hazard; i++ {
		rocks = append(rocks, dropRock(t, rng, KindHazard, 6, 20))
	}
	for i := 0; i < cfg.Special; i++ {
		rocks = append(rocks, dropRock(t, rng, KindSpecial, 8, 14))
	}
	return rocks
}

// dropRock picks a random x and rests the rock on the surface there, sunk by
// up to half its radius so it reads as partially buried.
func dropRock(t *Terrain, rng *rand.Rand, kind RockKind, minR, maxR int) Rock {
	radius := float64(minR)
	if maxR > minR {
		radius = float64(minR + rng.Intn(maxR-minR+1))
	}
	x := float64(rng.Intn(int(t.Length()) - 2*t.Step()))
	surface := t.HeightAt(x)
	sink := rng.Float64() * radius / 2
	return Rock{
		X:      x,
		Y:      surface - radius + sink,
		Kind:   kind,
		Radius: radius,
	}
}
