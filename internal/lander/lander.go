// Package lander implements the craft entity: resources and life support,
// rotational and translational flight dynamics, and the contact/settlement
// state machine that decides between crash, landing and lift-off.
//
// The simulation runs in world pixels (y grows downward) with physics in
// meters, converted through a fixed pixels-per-meter scale derived from the
// craft silhouette height. All state advances strictly sequentially within a
// tick; degraded conditions (fuel exhaustion, engine failure, structural
// overload) are modeled as state, never as errors.
package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/moon"
)

// Silhouette dimensions in world pixels. The height maps to the configured
// real craft height, fixing the pixels-per-meter scale.
const (
	SpriteW = 44
	SpriteH = 56
)

// Phase is the craft's contact state.
type Phase int

const (
	// PhaseFlying: no active ground contact.
	PhaseFlying Phase = iota
	// PhaseSettling: a contact point is recorded and the craft is pivoting
	// toward the local slope; re-entered flight is still possible.
	PhaseSettling
	// PhaseLanded: at rest on the surface, velocity zero. Reversible by
	// lift-off thrust.
	PhaseLanded
	// PhaseCrashed: terminal. Only a full reset leaves this phase.
	PhaseCrashed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "flying"
	case PhaseSettling:
		return "settling"
	case PhaseLanded:
		return "landed"
	case PhaseCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Lander is the single mutable entity owned by the simulation loop.
type Lander struct {
	cfg    config.LanderConfig
	shape  *moon.Bitmap
	pxPerM float64

	// Kinematics. X, Y is the top-left of the unrotated silhouette in world
	// pixels; velocities and accelerations are in m/s and m/s^2.
	X, Y       float64
	VX, VY     float64
	AX, AY     float64
	Angle      float64 // degrees, normalized to [0, 360)
	AngularVel float64 // deg/s

	// Resources
	Fuel        float64 // kg
	Oxygen      float64 // percent
	Battery     float64 // percent
	Temperature float64 // Celsius
	Damage      float64 // percent, monotonic until reset
	GForce      float64 // instantaneous |a| in g

	// Propulsion
	EngineOn     bool
	EngineOut    bool // permanent within the session
	StartupCount int
	Throttle     float64
	APUOn        bool

	Science int

	phase         Phase
	contact       core.Vec2 // pivot, valid in PhaseSettling and PhaseLanded
	gravityCenter core.Vec2
	crashCause    string
	report        *Report
}

// New constructs a lander for the given immutable session config.
func New(cfg config.LanderConfig) *Lander {
	l := &Lander{
		cfg:    cfg,
		shape:  moon.LanderShape(SpriteW, SpriteH),
		pxPerM: SpriteH / cfg.Physics.LanderHeightM,
	}
	l.Reset()
	return l
}

// Reset reinitializes the mutable state to construction-time defaults.
// Terrain and rocks are owned elsewhere and survive a reset.
func (l *Lander) Reset() {
	l.X = float64(l.cfg.World.WorldHeight / 2)
	l.Y = float64(l.cfg.World.WorldHeight / 4)
	l.VX = l.cfg.Physics.EntrySpeedX
	l.VY = 0
	l.AX, l.AY = 0, 0
	l.Angle = 0
	l.AngularVel = 0

	l.Fuel = l.cfg.Physics.FuelStart
	l.Oxygen = l.cfg.Systems.MaxOxygen
	l.Battery = l.cfg.Systems.MaxBattery
	l.Temperature = 20.0
	l.Damage = 0
	l.GForce = 0

	l.EngineOn = false
	l.EngineOut = false
	l.StartupCount = 0
	l.Throttle = 1.0
	l.APUOn = false

	l.Science = 0

	l.phase = PhaseFlying
	l.contact = core.Vec2{}
	l.gravityCenter = l.Center()
	l.crashCause = ""
	l.report = nil
}

// Config returns the session configuration.
func (l *Lander) Config() config.LanderConfig { return l.cfg }

// PxPerM returns the pixels-per-meter scale.
func (l *Lander) PxPerM() float64 { return l.pxPerM }

// Mass returns the current total mass in kg.
func (l *Lander) Mass() float64 { return l.cfg.Physics.DryMass + l.Fuel }

// Phase returns the current contact state.
func (l *Lander) Phase() Phase { return l.phase }

// Crashed reports whether the craft is in the terminal crashed state.
func (l *Lander) Crashed() bool { return l.phase == PhaseCrashed }

// Landed reports whether the craft is at rest on the surface.
func (l *Lander) Landed() bool { return l.phase == PhaseLanded }

// CrashCause returns the recorded crash cause, or empty.
func (l *Lander) CrashCause() string { return l.crashCause }

// Report returns the transient last-event payload, or nil.
func (l *Lander) Report() *Report { return l.report }

// ContactPoint returns the recorded contact pivot and whether one is set.
func (l *Lander) ContactPoint() (core.Vec2, bool) {
	set := l.phase == PhaseSettling || l.phase == PhaseLanded
	return l.contact, set
}

// Center returns the silhouette center in world pixels.
func (l *Lander) Center() core.Vec2 {
	return core.Vec2{X: l.X + SpriteW/2, Y: l.Y + SpriteH/2}
}

// BaseCoords returns the bottom-center of the craft in world pixels, the
// reference point for altitude readings.
func (l *Lander) BaseCoords() (float64, float64) {
	return l.X + SpriteW/2, l.Y + SpriteH
}

// Silhouette returns the craft bitmap rotated to the current orientation.
func (l *Lander) Silhouette() *moon.Bitmap {
	return l.shape.Rotate(l.Angle)
}

// SurfaceSlope returns the terrain slope in degrees directly under the
// craft center.
func (l *Lander) SurfaceSlope(t *moon.Terrain) float64 {
	c := l.Center()
	return t.SlopeAt(c.X)
}

// Altimetry returns the altitude in meters from the craft base to the
// surface directly below.
func (l *Lander) Altimetry(t *moon.Terrain) float64 {
	bx, by := l.BaseCoords()
	return (t.HeightAt(bx) - by) / l.pxPerM
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
