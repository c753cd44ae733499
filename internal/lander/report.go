package lander

import "math"

// Crash and failure causes surfaced through the report payload.
const (
	CauseRockStrike    = "CRASHED INTO ROCKS"
	CauseHardLanding   = "HARD LANDING"
	CauseStructural    = "STRUCTURAL DAMAGE"
	CauseEngineFailure = "ENGINE FAILURE: START_UP"
)

// Report is the transient last-event payload read by the presentation layer.
// It is overwritten on each significant event: crash, engine failure, or a
// recorded landing.
type Report struct {
	Cause         string  // Crash/failure cause, empty for a landing
	ImpactSpeed   float64 // m/s at the moment of a crash
	ImpactAngle   float64 // deg at the moment of a crash
	LandingSpeed  float64 // Vertical m/s at touchdown, landings only
	EngineFailure bool    // Permanent ignition failure
	Sample        bool    // A special rock was sampled on touchdown
}

// crash moves the craft into the terminal crashed state and records impact
// telemetry. Crashes take priority over any landing evaluation in the same
// tick.
func (l *Lander) crash(cause string) {
	l.phase = PhaseCrashed
	l.crashCause = cause
	l.EngineOn = false
	l.report = &Report{
		Cause:       cause,
		ImpactSpeed: math.Hypot(l.VX, l.VY),
		ImpactAngle: l.Angle,
	}
}
