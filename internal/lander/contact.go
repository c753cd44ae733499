package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/moon"
)

// Touchdown risk thresholds on the combined normalized score
// |v|/damageSpeed + |angle off slope|/maxAngle.
const (
	softLandingRatio   = 0.25 // At or below: clean touchdown
	structuralCapRatio = 0.75 // Above, with damage saturated: break-up
	hardLandingRatio   = 1.5  // Above: immediate hard-landing crash
)

// scienceAward is the score increment for sampling a special rock.
const scienceAward = 10

// CollisionCheck performs the externally-invoked contact evaluation for this
// tick: rock strike first (it overrides everything else), then the oriented
// silhouette against the terrain occupancy. On first terrain contact it
// records the pivot and classifies the touchdown; while a contact persists it
// only watches for lift-off.
func (l *Lander) CollisionCheck(in core.InputFrame, t *moon.Terrain, rocks []moon.Rock) {
	if l.phase == PhaseCrashed || l.phase == PhaseLanded {
		return
	}

	sil := l.Silhouette()
	c := l.Center()
	topX := int(c.X) - sil.Width()/2
	topY := int(c.Y) - sil.Height()/2

	rockHit, specialHit := l.rockOverlap(sil, topX, topY, rocks)
	if rockHit {
		l.crash(CauseRockStrike)
		return
	}

	px, py, contact := t.OverlapSilhouette(sil, topX, topY)
	if !contact {
		// A stale contact with thrust applied means the craft left the
		// ground: treat it as a completed lift-off.
		if l.phase == PhaseSettling && in.Has(core.ActionThrust) {
			l.phase = PhaseFlying
		}
		return
	}
	if l.phase == PhaseSettling {
		// Contact already recorded; settlement handles the rest.
		return
	}

	l.contact = core.Vec2{X: float64(px), Y: float64(py)}
	l.phase = PhaseSettling
	l.evaluateTouchdown(t, specialHit)
}

// evaluateTouchdown classifies the first contact of a descent. Velocity and
// attitude error combine into a single risk score; anything above the soft
// threshold accrues structural damage and may crash, anything at or below it
// is a clean landing worth a report (and possibly a rock sample).
func (l *Lander) evaluateTouchdown(t *moon.Terrain, specialHit bool) {
	slope := l.SurfaceSlope(t)
	angleDiff := core.AngleDiff(slope, l.Angle)

	velRatio := math.Hypot(l.VX, l.VY) / l.cfg.Landing.DamageSpeed
	angleRatio := math.Abs(angleDiff) / l.cfg.Landing.MaxAngle
	sum := velRatio + angleRatio

	if sum > softLandingRatio {
		l.Damage = clampF(l.Damage+sum*100, 0, 100)
		if l.Damage >= 100 && sum > structuralCapRatio {
			l.crash(CauseStructural)
			return
		}
		if sum > hardLandingRatio {
			l.crash(CauseHardLanding)
			return
		}
		// Provisional contact: no landing recorded this tick, the pivot
		// stays set for settlement and re-evaluation.
		return
	}

	rep := &Report{LandingSpeed: math.Abs(l.VY)}
	if specialHit {
		l.Science += scienceAward
		rep.Sample = true
	}
	l.report = rep
}

// rockOverlap tests the oriented silhouette against every collidable rock's
// circular mask. Hazard overlap is fatal; special overlap only flags a
// potential sample for the touchdown evaluation.
func (l *Lander) rockOverlap(sil *moon.Bitmap, topX, topY int, rocks []moon.Rock) (rockHit, specialHit bool) {
	for _, r := range rocks {
		if !r.Collidable() {
			continue
		}
		hit := r.HitRadius()
		// Cheap AABB rejection before rasterizing the circle.
		if r.X+hit < float64(topX) || r.X-hit > float64(topX+sil.Width()) ||
			r.Y+hit < float64(topY) || r.Y-hit > float64(topY+sil.Height()) {
			continue
		}

		mask := r.Mask()
		dx := int(r.X-hit) - topX - 1
		dy := int(r.Y-hit) - topY - 1
		if _, _, ok := sil.Overlap(mask, dx, dy); !ok {
			continue
		}
		if r.Kind == moon.KindSpecial {
			specialHit = true
			continue
		}
		rockHit = true
		return rockHit, specialHit
	}
	return rockHit, specialHit
}
