package config

// ApplyPreset composes a base config with a difficulty override set, returning
// a fresh session config. The base is never modified, so repeated sessions
// cannot accumulate scaling adjustments.
func ApplyPreset(base LanderConfig, preset DifficultyPreset) LanderConfig {
	cfg := base // struct copy, all fields are values

	switch preset {
	case DifficultyEasy:
		cfg.Physics.FuelStart = base.Physics.FuelStart * 1.5
		cfg.Systems.OxygenDrainRate = base.Systems.OxygenDrainRate * 0.6
		cfg.Systems.BatteryDrainRate = base.Systems.BatteryDrainRate * 0.6
		cfg.Landing.MaxAngle = base.Landing.MaxAngle * 1.5
		cfg.Landing.DamageSpeed = base.Landing.DamageSpeed * 1.4
		cfg.Rocks.Hazard = base.Rocks.Hazard / 2
	case DifficultyHard:
		cfg.Physics.FuelStart = base.Physics.FuelStart * 0.75
		cfg.Systems.OxygenDrainRate = base.Systems.OxygenDrainRate * 1.5
		cfg.Systems.BatteryDrainRate = base.Systems.BatteryDrainRate * 1.3
		cfg.Landing.MaxAngle = base.Landing.MaxAngle * 0.75
		cfg.Landing.DamageSpeed = base.Landing.DamageSpeed * 0.8
		cfg.Engine.StartupLimit = 3
		cfg.Rocks.Hazard = base.Rocks.Hazard * 3 / 2
	}

	return cfg
}
