package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/moon"
)

// settleGain scales gravity's tangential component during pivot settlement so
// the craft topples onto the slope at a playable rate.
const settleGain = 2.0

// earthG converts accelerations to g-load for thermal and HUD feedback.
const earthG = 9.81

// Update advances the craft by one simulated tick. Order within the tick:
// life-support drains, rotational dynamics, then flight integration or
// settlement depending on phase. Contact detection runs separately via
// CollisionCheck.
func (l *Lander) Update(in core.InputFrame, dt float64, t *moon.Terrain) {
	dt *= l.cfg.Physics.TimeScale
	if l.phase == PhaseCrashed {
		return
	}

	l.drainResources(dt)
	l.updateRotation(in, dt)

	switch l.phase {
	case PhaseFlying:
		l.integrateFlight(in, dt)
	case PhaseSettling, PhaseLanded:
		l.settleOrLiftOff(in, dt, t)
	}
}

// drainResources applies the per-tick life-support and power model: linear
// oxygen/battery drains, APU auto-activation at power loss, and fuel-burning
// battery recharge while the APU runs.
func (l *Lander) drainResources(dt float64) {
	sys := l.cfg.Systems

	l.Oxygen = math.Max(l.Oxygen-sys.OxygenDrainRate*dt, 0)
	l.Battery = math.Max(l.Battery-sys.BatteryDrainRate*dt, 0)

	if l.Battery <= 0 && !l.APUOn {
		l.APUOn = true
	} else if l.Battery >= sys.APURestartLevel && l.APUOn {
		l.APUOn = false
	}

	if l.APUOn && l.Battery < sys.MaxBattery {
		l.Fuel = math.Max(l.Fuel-sys.APUFuelRate*dt, 0)
		l.Battery = math.Min(l.Battery+sys.APURechargeRate*dt, sys.MaxBattery)
	}
}

// updateRotation applies control torque and integrates the orientation.
// Attitude control needs battery power; thrust does not (the coupling is
// intentionally asymmetric). Angular momentum is conserved without power.
func (l *Lander) updateRotation(in core.InputFrame, dt float64) {
	if l.Battery > 0 && l.phase != PhaseLanded {
		torque := 0.0
		if in.Has(core.ActionRotateLeft) {
			torque += l.cfg.Physics.RotationTorque
		}
		if in.Has(core.ActionRotateRight) {
			torque -= l.cfg.Physics.RotationTorque
		}
		l.AngularVel += torque / l.cfg.Physics.AngularInertia * dt
	}

	l.Angle = core.NormalizeAngle(l.Angle + l.AngularVel*dt)
}

// integrateFlight advances the free-flight translational state: gravity,
// throttle selection, main engine thrust with ignition bookkeeping, drag,
// then velocity/position integration and thermal load.
func (l *Lander) integrateFlight(in core.InputFrame, dt float64) {
	phy := l.cfg.Physics

	ax := 0.0
	ay := phy.Gravity

	l.selectThrottle(in)

	if in.Has(core.ActionThrust) && l.Fuel > 0 && !l.EngineOut {
		l.igniteEngine()
		if l.EngineOn {
			tax, tay := l.burn(dt)
			ax += tax
			ay += tay
		}
	} else if l.Fuel <= 0 {
		l.EngineOut = true
		l.EngineOn = false
	} else {
		l.EngineOn = false
	}

	// Trace-atmosphere drag, quadratic in velocity
	mass := l.Mass()
	drag := 0.5 * phy.DragCd * phy.DragArea * phy.AtmosphereRho
	ax -= drag * l.VX * math.Abs(l.VX) / mass
	ay -= drag * l.VY * math.Abs(l.VY) / mass

	l.AX, l.AY = ax, ay
	l.VX += ax * dt
	l.VY += ay * dt
	l.GForce = math.Hypot(ax, ay) / earthG
	l.X += l.VX * dt * l.pxPerM
	l.Y += l.VY * dt * l.pxPerM

	// G-load heats the structure; no cooling is modeled.
	l.Temperature = math.Min(
		l.Temperature+0.01*l.GForce*dt,
		l.cfg.Systems.MaxTemperature,
	)

	// The pivot arm origin tracks the silhouette center while airborne.
	l.gravityCenter = l.Center()
}

// selectThrottle resolves the discrete throttle commands, keeping the prior
// setting when none is pressed.
func (l *Lander) selectThrottle(in core.InputFrame) {
	switch {
	case in.Has(core.ActionThrottle1):
		l.Throttle = 1.0
	case in.Has(core.ActionThrottle2):
		l.Throttle = 0.5
	case in.Has(core.ActionThrottle3):
		l.Throttle = 0.33
	}
}

// igniteEngine handles a thrust command while the engine is off. Each
// ignition counts toward the startup limit; reaching it permanently disables
// the engine and records the failure instead of firing.
func (l *Lander) igniteEngine() {
	if l.EngineOn {
		return
	}
	l.StartupCount++
	if l.StartupCount >= l.cfg.Engine.StartupLimit {
		l.EngineOut = true
		l.EngineOn = false
		l.report = &Report{Cause: CauseEngineFailure, EngineFailure: true}
		return
	}
	l.EngineOn = true
}

// burn consumes fuel for one tick of thrust and returns the thrust
// acceleration resolved into world axes. The thrust vector points opposite
// the nose direction, rotated by the current orientation.
func (l *Lander) burn(dt float64) (ax, ay float64) {
	thrust := l.cfg.Engine.MaxThrust * l.Throttle
	mflow := thrust / (l.cfg.Engine.SpecificImpulse * l.cfg.Physics.Gravity)
	l.Fuel = math.Max(l.Fuel-mflow*dt*l.Throttle, 0)

	rad := l.Angle * math.Pi / 180
	ax = thrust / l.Mass() * -math.Sin(rad)
	ay = thrust / l.Mass() * -math.Cos(rad)
	return ax, ay
}

// settleOrLiftOff runs while a contact point is set: thrust clears the
// contact and returns the craft to flight; otherwise the craft pivots around
// the contact point until its orientation matches the local slope, then
// freezes into the landed state.
func (l *Lander) settleOrLiftOff(in core.InputFrame, dt float64, t *moon.Terrain) {
	targetSlope := l.SurfaceSlope(t)
	rotationStep := l.cfg.Physics.RotationSpeed * dt
	angleDiff := core.AngleDiff(targetSlope, l.Angle)

	l.AngularVel = 0
	l.EngineOn = false
	l.AX, l.AY = 0, 0

	switch {
	case in.Has(core.ActionThrust) && l.Fuel > 0 && !l.EngineOut:
		l.liftOff(dt)
	case math.Abs(angleDiff) >= rotationStep && l.phase == PhaseSettling:
		l.pivotStep(dt)
	default:
		// Within one rotation step of the slope: settle exactly.
		l.AX, l.AY = 0, 0
		l.VX, l.VY = 0, 0
		l.Angle = core.NormalizeAngle(targetSlope)
		l.phase = PhaseLanded
	}
}

// liftOff clears the contact and applies one tick of upward thrust.
func (l *Lander) liftOff(dt float64) {
	l.phase = PhaseFlying
	l.EngineOn = true

	ax, ay := l.burn(dt)
	l.AX, l.AY = ax, ay
	l.VX += ax * dt
	// Vertical thrust always pushes away from the ground on lift-off,
	// regardless of attitude.
	l.VY += -math.Abs(ay * dt)
	l.GForce = math.Hypot(ax, ay) / earthG
	l.X += l.VX * dt * l.pxPerM
	l.Y += l.VY * dt * l.pxPerM
	l.gravityCenter = l.Center()
}

// pivotStep advances one tick of pivot settlement: gravity's component
// tangential to the lever arm (gravity center -> contact point) accelerates
// the craft around the pivot, and the resulting orientation change is derived
// from how far the arm vector swept, not integrated directly.
func (l *Lander) pivotStep(dt float64) {
	pivot := l.contact
	cg := l.gravityCenter

	dx0 := (cg.X - pivot.X) / l.pxPerM
	dy0 := (cg.Y - pivot.Y) / l.pxPerM
	arm0 := math.Atan2(dy0, dx0)

	r := math.Hypot(dx0, dy0)
	if r == 0 {
		return
	}
	tx, ty := -dy0/r, dx0/r
	tang := l.cfg.Physics.Gravity * ty * settleGain
	ax := tang * tx
	ay := tang * ty

	l.AX, l.AY = ax, ay
	l.VX += ax * dt
	l.VY += ay * dt
	l.X += l.VX * dt * l.pxPerM
	l.Y += l.VY * dt * l.pxPerM

	cg2 := core.Vec2{
		X: cg.X + l.VX*dt*l.pxPerM,
		Y: cg.Y + l.VY*dt*l.pxPerM,
	}
	dx1 := (cg2.X - pivot.X) / l.pxPerM
	dy1 := (cg2.Y - pivot.Y) / l.pxPerM
	arm1 := math.Atan2(dy1, dx1)

	deltaArm := core.AngleDiff(arm1*180/math.Pi, arm0*180/math.Pi)
	l.Angle = core.NormalizeAngle(l.Angle - deltaArm)
	l.gravityCenter = cg2
}
