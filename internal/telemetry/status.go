// Package telemetry derives pilot-facing status and warning messages from the
// lander state exposed by the simulation. It reads only exported values and
// lives outside the physics core.
package telemetry

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

// Status and warning messages, worst condition last wins.
const (
	StatusLanded     = "LANDED SUCCESSFULLY!"
	StatusCrashed    = "*** CRASHED ***"
	WarnLowFuel      = "**WARNING**: LOW FUEL!"
	WarnBrakingDist  = "**WARNING**: BRAKING DISTANCE!"
	WarnLowAltitude  = "**WARNING**: LOW ALT!"
	WarnStructural   = "**WARNING**: STRUCTURAL DAMAGE!"
	WarnEngineOut    = "**WARNING**: ENGINE OUT!"
	StatusRockSample = "COLLECTED COOL ROCK!!"
)

// Advisory thresholds.
const (
	lowFuelKg       = 200.0
	lowAltM         = 5.0
	lowAltSinkRate  = 2.0 // m/s descending
	damageWarnLevel = 75.0
	brakingBufferM  = 5.0
)

// Status derives the single status line for the current tick.
// Later checks override earlier ones so the most urgent condition shows.
func Status(l *lander.Lander, altM float64) string {
	if l.Landed() {
		if rep := l.Report(); rep != nil && rep.Sample {
			return StatusRockSample
		}
		return StatusLanded
	}
	if l.Crashed() {
		return StatusCrashed
	}

	msg := ""
	if l.Fuel < lowFuelKg {
		msg = WarnLowFuel
	}
	if BrakingDistanceExceeded(l, altM) {
		msg = WarnBrakingDist
	}
	if altM < lowAltM && l.VY > lowAltSinkRate {
		msg = WarnLowAltitude
	}
	if l.Damage > damageWarnLevel {
		msg = WarnStructural
	}
	if l.EngineOut {
		msg = WarnEngineOut
	}
	return msg
}

// BrakingDistanceExceeded reports whether the craft is descending with less
// altitude than it needs to null its sink rate at full thrust.
func BrakingDistanceExceeded(l *lander.Lander, altM float64) bool {
	if l.VY <= 0 {
		return false
	}
	cfg := l.Config()
	maxAcc := cfg.Engine.MaxThrust/l.Mass() - cfg.Physics.Gravity
	stopDist := math.Inf(1)
	if maxAcc > 0 {
		stopDist = l.VY * l.VY / (2 * maxAcc)
	}
	return altM > brakingBufferM && altM <= stopDist+brakingBufferM
}
