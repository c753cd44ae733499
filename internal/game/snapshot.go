package game

// Snapshot captures the complete flight state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Phase   string
	X       float64
	Y       float64
	VX      float64
	VY      float64
	Angle   float64
	Fuel    float64
	Oxygen  float64
	Battery float64
	Temp    float64
	Damage  float64
	Science int
	Score   int
	Status  string

	EngineOn  bool
	EngineOut bool
	APUOn     bool
}

// Snapshot returns the current flight snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	l := g.craft
	return Snapshot{
		Tick:      g.tick,
		Phase:     l.Phase().String(),
		X:         l.X,
		Y:         l.Y,
		VX:        l.VX,
		VY:        l.VY,
		Angle:     l.Angle,
		Fuel:      l.Fuel,
		Oxygen:    l.Oxygen,
		Battery:   l.Battery,
		Temp:      l.Temperature,
		Damage:    l.Damage,
		Science:   l.Science,
		Score:     g.score,
		Status:    g.status,
		EngineOn:  l.EngineOn,
		EngineOut: l.EngineOut,
		APUOn:     l.APUOn,
	}
}
