package game

import (
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/moon"
	"github.com/vovakirdan/tui-lander/internal/sensor"
	"github.com/vovakirdan/tui-lander/internal/telemetry"
)

// hudRows is the number of screen rows reserved for telemetry at the top.
const hudRows = 3

// radarRangeM is how far the rock radar scans around the craft base.
const radarRangeM = 50.0

// Render draws the current game state to the screen: terrain and rocks under
// a camera that follows the craft, the craft itself, and the telemetry HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.craft == nil || g.terrain == nil {
		return
	}

	viewRows := dst.Height() - hudRows
	if viewRows < 4 {
		viewRows = 4
	}
	pxPerRow := float64(g.session.World.WorldHeight) / float64(viewRows)
	pxPerCol := pxPerRow * 0.5

	viewWpx := float64(dst.Width()) * pxPerCol
	camX := g.craft.Center().X - viewWpx/2
	camX = core.ClampF(camX, 0, g.terrain.Length()-viewWpx)

	g.drawTerrain(dst, camX, pxPerCol, pxPerRow, viewRows)
	g.drawRocks(dst, camX, pxPerCol, pxPerRow)
	g.drawCraft(dst, camX, pxPerCol, pxPerRow)
	g.drawHUD(dst)

	if g.paused {
		g.drawMessageBox(dst, "PAUSED", "Press P to resume")
	}
	if g.craft.Crashed() {
		g.drawCrashBox(dst)
	} else if g.craft.Landed() {
		g.drawLandedBox(dst)
	}
}

// drawTerrain fills one column of surface per screen column.
func (g *Game) drawTerrain(dst *core.Screen, camX, pxPerCol, pxPerRow float64, viewRows int) {
	for cx := 0; cx < dst.Width(); cx++ {
		wx := camX + (float64(cx)+0.5)*pxPerCol
		gy := g.terrain.HeightAt(wx)
		row := hudRows + int(gy/pxPerRow)
		if row < hudRows {
			row = hudRows
		}
		if row < dst.Height() {
			dst.SetColored(cx, row, '█', core.ColorWhite)
		}
		for y := row + 1; y < dst.Height(); y++ {
			dst.SetColored(cx, y, '░', core.ColorGray)
		}
	}
}

// drawRocks marks rocks that fall inside the camera window.
func (g *Game) drawRocks(dst *core.Screen, camX, pxPerCol, pxPerRow float64) {
	for _, r := range g.rocks {
		cx := int((r.X - camX) / pxPerCol)
		cy := hudRows + int((r.Y-r.Radius)/pxPerRow)
		if cx < 0 || cx >= dst.Width() || cy < hudRows || cy >= dst.Height() {
			continue
		}
		switch r.Kind {
		case moon.KindDecorative:
			dst.SetColored(cx, cy, '∙', core.ColorGray)
		case moon.KindHazard:
			ch := 'o'
			if r.Radius > 12 {
				ch = 'O'
			}
			dst.SetColored(cx, cy, ch, core.ColorRed)
		case moon.KindSpecial:
			dst.SetColored(cx, cy, '◆', core.ColorYellow)
		}
	}
}

// drawCraft draws the lander as an attitude arrow plus an engine plume.
func (g *Game) drawCraft(dst *core.Screen, camX, pxPerCol, pxPerRow float64) {
	c := g.craft.Center()
	cx := int((c.X - camX) / pxPerCol)
	cy := hudRows + int(c.Y/pxPerRow)
	if cx < 0 || cx >= dst.Width() || cy < hudRows || cy >= dst.Height() {
		return
	}

	body := attitudeRune(g.craft.Angle)
	color := core.ColorCyan
	if g.craft.Crashed() {
		body = '✶'
		color = core.ColorRed
		if g.crashTick%6 < 3 {
			color = core.ColorYellow
		}
	} else if g.craft.Landed() {
		color = core.ColorGreen
	}
	dst.SetColored(cx, cy, body, color)

	if g.craft.EngineOn && !g.craft.Crashed() {
		flame := '▼'
		if g.tick%2 == 0 {
			flame = '*'
		}
		if cy+1 < dst.Height() {
			dst.SetColored(cx, cy+1, flame, core.ColorYellow)
		}
	}
}

// attitudeRune picks an arrow for the nearest cardinal attitude.
func attitudeRune(angle float64) rune {
	switch {
	case angle < 45 || angle >= 315:
		return '▲'
	case angle < 135:
		return '◀'
	case angle < 225:
		return '▼'
	default:
		return '▶'
	}
}

// drawHUD writes the two telemetry rows and the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	l := g.craft

	bx, by := l.BaseCoords()
	radar := "--"
	if r, ok := sensor.Nearest(g.scanRocks, bx, by, radarRangeM, l.PxPerM()); ok {
		radar = fmt.Sprintf("%.0fm", r.DistanceM)
	}

	row0 := fmt.Sprintf("ALT %6.1fm  VS %+5.1f  HS %+5.1f  ATT %5.1f°  G %4.1f  RDR %-4s  T+%4.0fs",
		g.altitude, l.VY, l.VX, l.Angle, l.GForce, radar, g.elapsed)
	dst.DrawTextColored(0, 0, row0, core.ColorCyan)

	apu := "OFF"
	if l.APUOn {
		apu = "ON"
	}
	row1 := fmt.Sprintf("FUEL %5.0f  OXY %3.0f%%  BATT %3.0f%%  TEMP %3.0fC  DMG %3.0f%%  APU %-3s  THR %3.0f%%  SCI %d",
		l.Fuel, l.Oxygen, l.Battery, l.Temperature, l.Damage, apu, l.Throttle*100, l.Science)
	dst.DrawTextColored(0, 1, row1, core.ColorCyan)

	if g.status != "" {
		dst.DrawTextColored(0, 2, g.status, statusColor(g.status))
	}
}

// statusColor maps the status line to a severity color.
func statusColor(status string) core.Color {
	switch status {
	case telemetry.StatusLanded, telemetry.StatusRockSample:
		return core.ColorGreen
	case telemetry.StatusCrashed, telemetry.WarnStructural, telemetry.WarnEngineOut:
		return core.ColorRed
	default:
		return core.ColorYellow
	}
}

// drawCrashBox shows the terminal crash report.
func (g *Game) drawCrashBox(dst *core.Screen) {
	lines := []string{"*** CRASHED ***"}
	if rep := g.craft.Report(); rep != nil {
		lines = append(lines, rep.Cause)
		if !rep.EngineFailure {
			lines = append(lines, fmt.Sprintf("Impact %.1f m/s at %.0f°",
				rep.ImpactSpeed, rep.ImpactAngle))
		}
	}
	lines = append(lines, fmt.Sprintf("Score: %d  |  Press R to retry", g.score))
	g.drawReportBox(dst, lines, core.ColorRed)
}

// drawLandedBox shows the landing report.
func (g *Game) drawLandedBox(dst *core.Screen) {
	lines := []string{telemetry.StatusLanded}
	if rep := g.craft.Report(); rep != nil {
		lines = append(lines, fmt.Sprintf("Touchdown %.1f m/s  |  Damage %.0f%%",
			rep.LandingSpeed, g.craft.Damage))
		if rep.Sample {
			lines = append(lines, telemetry.StatusRockSample)
		}
	}
	lines = append(lines, fmt.Sprintf("Score: %d  |  Thrust to lift off, R to retry", g.score))
	g.drawReportBox(dst, lines, core.ColorGreen)
}

// drawMessageBox draws a two-line centered box.
func (g *Game) drawMessageBox(dst *core.Screen, title, subtitle string) {
	g.drawReportBox(dst, []string{title, subtitle}, core.ColorWhite)
}

// drawReportBox draws a bordered box with the given lines centered on screen.
func (g *Game) drawReportBox(dst *core.Screen, lines []string, c core.Color) {
	maxLen := 0
	for _, s := range lines {
		if len([]rune(s)) > maxLen {
			maxLen = len([]rune(s))
		}
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, s := range lines {
		x := boxX + (boxW-len([]rune(s)))/2
		dst.DrawTextColored(x, boxY+1+i, s, c)
	}
}
