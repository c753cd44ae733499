package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default simulation configuration.
// Values match the reference Apollo-class descent stage tuning.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: WorldConfig{
			TerrainLength: 15000,
			PixelStep:     8,
			WorldHeight:   1000,
			CraterCount:   5,
		},
		Physics: PhysicsConfig{
			Gravity:        1.62,
			DryMass:        13000.0,
			FuelStart:      2000.0,
			DragCd:         0.7,
			DragArea:       10.0,
			AtmosphereRho:  0.02,
			AngularInertia: 2.0,
			RotationTorque: 250.0,
			RotationSpeed:  90.0,
			EntrySpeedX:    10.0,
			LanderHeightM:  7.0,
			TimeScale:      1.0,
		},
		Engine: EngineConfig{
			MaxThrust:       45000.0,
			SpecificImpulse: 311.0,
			StartupLimit:    5,
		},
		Landing: LandingConfig{
			MaxAngle:        20.0,
			DamageSpeed:     10.0,
			MaxLandingSpeed: 2.0,
			RockDamageSpeed: 2.0,
		},
		Systems: SystemsConfig{
			MaxOxygen:        100.0,
			MaxBattery:       100.0,
			MaxTemperature:   120.0,
			OxygenDrainRate:  1.5,
			BatteryDrainRate: 5.0,
			APUFuelRate:      2.0,
			APURechargeRate:  10.0,
			APURestartLevel:  50.0,
		},
		Rocks: RocksConfig{
			Decorative: 400,
			Hazard:     50,
			Special:    2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML document.
func GetDefaultYAML() []byte {
	return defaultLanderYAML
}
