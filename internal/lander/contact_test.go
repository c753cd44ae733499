package lander

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/moon"
)

// descend steps the craft until it lands, crashes or the tick budget runs out.
func descend(l *Lander, t *moon.Terrain, rocks []moon.Rock, ticks int) {
	for i := 0; i < ticks && l.Phase() != PhaseLanded && !l.Crashed(); i++ {
		l.Update(frame(), dt, t)
		l.CollisionCheck(frame(), t, rocks)
	}
}

func TestSoftLanding(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 844.5
	l.VX, l.VY = 0, 1

	descend(l, terrain, nil, 120)

	if l.Phase() != PhaseLanded {
		t.Fatalf("phase = %v, want landed", l.Phase())
	}
	if l.VX != 0 || l.VY != 0 {
		t.Errorf("velocity = (%v, %v), want rest", l.VX, l.VY)
	}
	if l.Angle != 0 {
		t.Errorf("Angle = %v on flat ground, want 0", l.Angle)
	}
	if l.Damage != 0 {
		t.Errorf("Damage = %v, want 0 for a clean touchdown", l.Damage)
	}
	rep := l.Report()
	if rep == nil {
		t.Fatal("clean touchdown should produce a report")
	}
	if rep.LandingSpeed < 1 || rep.LandingSpeed > 1.5 {
		t.Errorf("LandingSpeed = %v, want just above the approach speed", rep.LandingSpeed)
	}
	if rep.Sample {
		t.Error("no rock was there to sample")
	}
}

func TestFirmLandingTakesDamage(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 844.5
	l.VX, l.VY = 0, 6

	descend(l, terrain, nil, 120)

	if l.Phase() != PhaseLanded {
		t.Fatalf("phase = %v, want landed despite the damage", l.Phase())
	}
	// 6 m/s against the 10 m/s damage threshold runs about 60% structural.
	if l.Damage < 59 || l.Damage > 63 {
		t.Errorf("Damage = %v, want about 60", l.Damage)
	}
}

func TestStructuralCrash(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 844.5
	l.VX, l.VY = 0, 16

	descend(l, terrain, nil, 120)

	if !l.Crashed() {
		t.Fatal("16 m/s impact must crash")
	}
	if l.CrashCause() != CauseStructural {
		t.Errorf("cause = %q, want structural break-up", l.CrashCause())
	}
	if l.Damage != 100 {
		t.Errorf("Damage = %v, want saturated", l.Damage)
	}
	rep := l.Report()
	if rep == nil || rep.Cause != CauseStructural {
		t.Fatalf("report = %+v, want structural cause", rep)
	}
	if rep.ImpactSpeed < 16 || rep.ImpactSpeed > 17 {
		t.Errorf("ImpactSpeed = %v, want about 16", rep.ImpactSpeed)
	}
}

func TestTiltedContactCrashes(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 830
	l.VX, l.VY = 0, 1
	l.Angle = 30 // well past the tolerated attitude error

	descend(l, terrain, nil, 300)

	if !l.Crashed() {
		t.Fatal("touching down 30 degrees off the slope must crash")
	}
	if l.CrashCause() != CauseStructural {
		t.Errorf("cause = %q", l.CrashCause())
	}
}

func TestRockStrikeOverridesTerrain(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 845.5 // footpads already in the ground
	l.VX, l.VY = 0, 1

	c := l.Center()
	rocks := []moon.Rock{{X: c.X, Y: c.Y, Kind: moon.KindHazard, Radius: 20}}

	l.CollisionCheck(frame(), terrain, rocks)

	if !l.Crashed() {
		t.Fatal("hazard rock overlap must crash")
	}
	if l.CrashCause() != CauseRockStrike {
		t.Errorf("cause = %q, want rock strike before terrain contact", l.CrashCause())
	}
}

func TestDecorativeRocksNeverCollide(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 500
	l.VX, l.VY = 0, 0

	c := l.Center()
	rocks := []moon.Rock{{X: c.X, Y: c.Y, Kind: moon.KindDecorative, Radius: 20}}

	l.CollisionCheck(frame(), terrain, rocks)

	if l.Crashed() {
		t.Error("decorative rocks are visual only")
	}
}

func TestSpecialRockSample(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 844.5
	l.VX, l.VY = 0, 1

	// A special rock buried by the left footpad, inside the leg sweep.
	rocks := []moon.Rock{{X: l.X + 2, Y: 899, Kind: moon.KindSpecial, Radius: 14}}

	descend(l, terrain, rocks, 120)

	if l.Phase() != PhaseLanded {
		t.Fatalf("phase = %v, want landed on the sample site", l.Phase())
	}
	if l.Science != 10 {
		t.Errorf("Science = %v, want 10 for the sample", l.Science)
	}
	rep := l.Report()
	if rep == nil || !rep.Sample {
		t.Errorf("report = %+v, want a recorded sample", rep)
	}
}

func TestLiftOffFromLanded(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 844.5
	l.VX, l.VY = 0, 1
	descend(l, terrain, nil, 120)
	if l.Phase() != PhaseLanded {
		t.Fatalf("setup: phase = %v", l.Phase())
	}

	ignitions := l.StartupCount
	fuel := l.Fuel
	l.Update(frame(core.ActionThrust), dt, terrain)

	if l.Phase() != PhaseFlying {
		t.Fatalf("phase = %v, want flying after lift-off", l.Phase())
	}
	if !l.EngineOn {
		t.Error("lift-off thrust should run the engine")
	}
	if l.VY >= 0 {
		t.Errorf("VY = %v, lift-off must push away from the ground", l.VY)
	}
	if l.Fuel >= fuel {
		t.Error("lift-off burn should consume fuel")
	}
	if l.StartupCount != ignitions {
		t.Error("lift-off must not count against the ignition budget")
	}
}

func TestSettleSnapsToSlope(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 845
	l.VX, l.VY = 0, 0.2
	l.Angle = 1 // within one rotation step of the flat slope
	l.phase = PhaseSettling
	l.contact = core.Vec2{X: 2000, Y: 900}

	l.Update(frame(), dt, terrain)

	if l.Phase() != PhaseLanded {
		t.Fatalf("phase = %v, want landed", l.Phase())
	}
	if l.Angle != 0 {
		t.Errorf("Angle = %v, want snapped to the slope", l.Angle)
	}
	if l.VX != 0 || l.VY != 0 || l.AngularVel != 0 {
		t.Error("settled craft must be at rest")
	}
}

func TestThrustClearsStaleContact(t *testing.T) {
	l, terrain := testCraft()
	l.X, l.Y = 2000, 500 // well clear of the ground
	l.phase = PhaseSettling
	l.contact = core.Vec2{X: 2022, Y: 900}

	l.CollisionCheck(frame(core.ActionThrust), terrain, nil)

	if l.Phase() != PhaseFlying {
		t.Errorf("phase = %v, want flying once the contact is gone", l.Phase())
	}
}

func TestContactPoint(t *testing.T) {
	l, terrain := testCraft()
	if _, ok := l.ContactPoint(); ok {
		t.Error("no contact point while flying")
	}

	l.X, l.Y = 2000, 844.5
	l.VX, l.VY = 0, 1
	descend(l, terrain, nil, 120)

	p, ok := l.ContactPoint()
	if !ok {
		t.Fatal("landed craft must expose its contact point")
	}
	if math.Abs(p.Y-900) > 2 {
		t.Errorf("contact y = %v, want at the surface", p.Y)
	}
}
