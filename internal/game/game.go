// Package game wires the lander simulation, terrain, rocks and sensors into
// the platform Game interface: fixed-tick stepping, input mapping, scoring
// and screen rendering.
package game

import (
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/moon"
	"github.com/vovakirdan/tui-lander/internal/sensor"
	"github.com/vovakirdan/tui-lander/internal/telemetry"
)

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements core.Game for the lunar lander.
type Game struct {
	runtime core.RuntimeConfig
	session config.LanderConfig

	terrain   *moon.Terrain
	rocks     []moon.Rock
	scanRocks []moon.Rock // collidable subset watched by the radar
	craft     *lander.Lander
	genSeed   int64

	dt        float64
	tick      uint64
	elapsed   float64
	crashTick int

	status    string
	score     int
	bonus     int
	bonusPaid bool
	paused    bool
	altitude  float64
}

// New creates a new lander game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Reset initializes or restarts the session. The terrain and rock field are
// generated once per seed, strictly in that order (rock placement depends on
// the generated surface); a retry with the same seed only resets the craft.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
		g.runtime.TickRate = cfg.TickRate
	}
	g.dt = 1.0 / float64(cfg.TickRate)

	if g.terrain == nil || g.craft == nil || cfg.Seed != g.genSeed {
		base, err := config.LoadLander(configPath)
		if err != nil {
			base = config.DefaultLanderConfig()
		}
		g.session = config.ApplyPreset(base, config.DifficultyPreset(difficultyPreset))

		g.terrain = moon.Generate(g.session.World, cfg.Seed)
		g.rocks = moon.PlaceRocks(g.terrain, g.session.Rocks, cfg.Seed)
		g.scanRocks = g.scanRocks[:0]
		for _, r := range g.rocks {
			if r.Collidable() {
				g.scanRocks = append(g.scanRocks, r)
			}
		}
		g.craft = lander.New(g.session)
		g.genSeed = cfg.Seed
	} else {
		g.craft.Reset()
	}

	g.tick = 0
	g.elapsed = 0
	g.crashTick = 0
	g.status = ""
	g.score = 0
	g.bonus = 0
	g.bonusPaid = false
	g.paused = false
	g.altitude = g.readAltimeter()
}

// readAltimeter takes the surface-relative altitude under the craft base.
func (g *Game) readAltimeter() float64 {
	bx, by := g.craft.BaseCoords()
	return sensor.Altitude(g.terrain, bx, by, 0, g.craft.PxPerM())
}

// Step advances the simulation by one tick: resource drains and dynamics
// inside the craft update, then the contact/collision evaluation, then the
// status derivation for the HUD.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.craft.Crashed() {
		g.crashTick++
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.elapsed += g.dt

	g.craft.Update(in, g.dt, g.terrain)
	if !g.craft.Landed() && !g.craft.Crashed() {
		g.craft.CollisionCheck(in, g.terrain, g.rocks)
	}

	g.altitude = g.readAltimeter()
	g.status = telemetry.Status(g.craft, g.altitude)
	g.updateScore()

	return core.StepResult{State: g.State()}
}

// updateScore accumulates science and pays the one-time landing bonus:
// structural condition plus remaining fuel, captured at the moment of
// touchdown so later fuel use cannot erode it.
func (g *Game) updateScore() {
	if g.craft.Landed() && !g.bonusPaid {
		g.bonusPaid = true
		g.bonus = int(100-g.craft.Damage) + int(g.craft.Fuel/20)
	}
	g.score = g.craft.Science + g.bonus
}

// Craft exposes the lander entity for the status consumer and tests.
func (g *Game) Craft() *lander.Lander { return g.craft }

// Terrain exposes the generated terrain.
func (g *Game) Terrain() *moon.Terrain { return g.terrain }

// Rocks exposes the placed rock field.
func (g *Game) Rocks() []moon.Rock { return g.rocks }

// Status returns the derived status line for the current tick.
func (g *Game) Status() string { return g.status }

// Altitude returns the last altimeter reading in meters.
func (g *Game) Altitude() float64 { return g.altitude }

// Elapsed returns the mission clock in seconds.
func (g *Game) Elapsed() float64 { return g.elapsed }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.craft != nil && g.craft.Crashed(),
		Landed:   g.craft != nil && g.craft.Landed(),
		Paused:   g.paused,
	}
}
