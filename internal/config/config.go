// Package config provides YAML-based session configuration and difficulty
// presets for the lander. A session config is composed once from the base
// config plus a preset override set and never mutated afterwards; the
// simulation components receive it by value.
package config

// LanderConfig contains all tunables consumed by the simulation.
type LanderConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Engine  EngineConfig  `yaml:"engine"`
	Landing LandingConfig `yaml:"landing"`
	Systems SystemsConfig `yaml:"systems"`
	Rocks   RocksConfig   `yaml:"rocks"`
}

// WorldConfig defines the play-field geometry in world pixels.
type WorldConfig struct {
	TerrainLength int `yaml:"terrain_length"` // Horizontal extent in pixels
	PixelStep     int `yaml:"pixel_step"`     // Spacing between height samples
	WorldHeight   int `yaml:"world_height"`   // Vertical extent in pixels
	CraterCount   int `yaml:"crater_count"`   // Craters carved into the base profile
}

// PhysicsConfig defines the rigid-body flight model parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // m/s^2, lunar surface
	DryMass        float64 `yaml:"dry_mass"`        // kg without fuel
	FuelStart      float64 `yaml:"fuel_start"`      // kg at session start
	DragCd         float64 `yaml:"drag_cd"`         // Drag coefficient
	DragArea       float64 `yaml:"drag_area"`       // Reference area, m^2
	AtmosphereRho  float64 `yaml:"atmosphere_rho"`  // Trace atmosphere density
	AngularInertia float64 `yaml:"angular_inertia"` // Moment of inertia
	RotationTorque float64 `yaml:"rotation_torque"` // RCS torque per command
	RotationSpeed  float64 `yaml:"rotation_speed"`  // deg/s, settlement snap step
	EntrySpeedX    float64 `yaml:"entry_speed_x"`   // m/s horizontal at spawn
	LanderHeightM  float64 `yaml:"lander_height_m"` // Real craft height, meters
	TimeScale      float64 `yaml:"time_scale"`      // Simulation time multiplier
}

// EngineConfig defines the main engine parameters.
type EngineConfig struct {
	MaxThrust       float64 `yaml:"max_thrust"`       // N at full throttle
	SpecificImpulse float64 `yaml:"specific_impulse"` // s
	StartupLimit    int     `yaml:"startup_limit"`    // Ignition attempts before failure
}

// LandingConfig defines the touchdown tolerance thresholds.
type LandingConfig struct {
	MaxAngle        float64 `yaml:"max_angle"`         // deg off local slope
	DamageSpeed     float64 `yaml:"damage_speed"`      // m/s normalizing speed ratio
	MaxLandingSpeed float64 `yaml:"max_landing_speed"` // m/s advisory limit
	RockDamageSpeed float64 `yaml:"rock_damage_speed"` // m/s rock strike threshold
}

// SystemsConfig defines the life-support and power model.
type SystemsConfig struct {
	MaxOxygen        float64 `yaml:"max_oxygen"`         // percent
	MaxBattery       float64 `yaml:"max_battery"`        // percent
	MaxTemperature   float64 `yaml:"max_temperature"`    // Celsius cap
	OxygenDrainRate  float64 `yaml:"oxygen_drain_rate"`  // %/s
	BatteryDrainRate float64 `yaml:"battery_drain_rate"` // %/s
	APUFuelRate      float64 `yaml:"apu_fuel_rate"`      // kg/s while recharging
	APURechargeRate  float64 `yaml:"apu_recharge_rate"`  // %/s while recharging
	APURestartLevel  float64 `yaml:"apu_restart_level"`  // battery % that stops the APU
}

// RocksConfig defines the rock field population by kind.
type RocksConfig struct {
	Decorative int `yaml:"decorative"` // Visual only, no collision
	Hazard     int `yaml:"hazard"`     // Collidable, fatal on contact
	Special    int `yaml:"special"`    // Sampleable on a soft landing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the given preset name is recognized.
func ValidPreset(p DifficultyPreset) bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, "":
		return true
	}
	return false
}
