package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	barrierColor    = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	turretColor     = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var tankColors = [2]color.RGBA{
	{R: 0, G: 255, B: 0, A: 255}, // P1 neon green
	{R: 255, G: 0, B: 255, A: 255}, // P2 neon pink
}

// powerUpColors is indexed by PowerUpKind.
var powerUpColors = [powerUpKindCount]color.RGBA{
	PowerUpSpeedBoost:   {R: 0, G: 255, B: 255, A: 255},
	PowerUpRapidFire:    {R: 255, G: 255, B: 0, A: 255},
	PowerUpShield:       {R: 255, G: 255, B: 255, A: 255},
	PowerUpPiercingShot: {R: 255, G: 136, B: 0, A: 255},
}

func tankColor(id TankID) color.RGBA {
	if id < 0 || int(id) >= len(tankColors) {
		return textColor
	}
	return tankColors[id]
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Draw renders whichever screen the arena state calls for.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.arena.State() {
	case StateMenu:
		g.drawMenu(screen)
	case StatePlaying:
		g.drawWorld(screen)
		g.drawHUD(screen)
	case StateGameOver:
		g.drawWorld(screen)
		g.drawHUD(screen)
		g.drawGameOver(screen)
	}

	if g.showLog {
		g.arena.Thoughts().Draw(screen, g.width-logPanelWidth, g.height)
	}
	if g.frame < g.statusUntil {
		g.drawText(screen, g.status, 8, float64(g.height)-20, 1, textColor, false)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	if g.showPaths {
		g.drawNavGrid(screen)
	}
	for _, b := range g.arena.Barriers() {
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), barrierColor, false)
	}
	g.drawPowerUps(screen)
	for _, t := range g.arena.Tanks() {
		g.drawTank(screen, t)
	}
	g.drawBullets(screen)
	if g.showPaths {
		g.drawAIPaths(screen)
	}
}

func (g *Game) drawTank(screen *ebiten.Image, t *Tank) {
	cfg := g.arena.Config()
	if t.Shield {
		pulse := math.Sin(float64(g.frame)/9)*0.15 + 0.85
		vector.FillCircle(screen, float32(t.X), float32(t.Y), float32(cfg.TankHeight*0.7),
			withAlpha(textColor, 0.3+pulse*0.2), true)
	}
	fillRotatedRect(screen, t.X, t.Y, t.Angle,
		-cfg.TankHeight/2, -cfg.TankWidth/2, cfg.TankHeight/2, cfg.TankWidth/2, tankColor(t.ID))
	r := float64(t.Recoil)
	fillRotatedRect(screen, t.X, t.Y, t.Angle, -r, -4, cfg.TurretLength-r, 4, turretColor)
}

// fillRotatedRect fills the local-space box (x0,y0)-(x1,y1) rotated by angle
// about (cx,cy).
func fillRotatedRect(screen *ebiten.Image, cx, cy, angle, x0, y0, x1, y1 float64, c color.RGBA) {
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	var path vector.Path
	for i, p := range corners {
		x := float32(cx + p[0]*cos - p[1]*sin)
		y := float32(cy + p[0]*sin + p[1]*cos)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)
}

func (g *Game) drawBullets(screen *ebiten.Image) {
	for _, b := range g.arena.Bullets() {
		c := tankColor(b.Owner)
		for i, p := range b.Trail {
			progress := float64(i) / float64(len(b.Trail))
			vector.FillCircle(screen, float32(p[0]), float32(p[1]), float32(bulletSize*progress),
				withAlpha(c, progress*0.6), true)
		}
		if b.Piercing {
			vector.StrokeCircle(screen, float32(b.X), float32(b.Y), bulletSize+2, 1.5,
				powerUpColors[PowerUpPiercingShot], true)
		}
		vector.FillCircle(screen, float32(b.X), float32(b.Y), bulletSize, c, true)
	}
}

func (g *Game) drawPowerUps(screen *ebiten.Image) {
	cfg := g.arena.Config()
	now := g.arena.Tick()
	for _, p := range g.arena.PowerUps() {
		life := 1 - float64(now-p.SpawnTick)/float64(cfg.PowerUpLifeTicks)
		pulse := math.Abs(math.Sin(float64(g.frame) / 12))
		c := powerUpColors[p.Kind]
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(cfg.PowerUpRadius+pulse*5), withAlpha(c, life*0.5), true)
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(cfg.PowerUpRadius), withAlpha(c, life), true)
		g.drawText(screen, p.Kind.effect().letter, p.X, p.Y-6, 1, color.RGBA{R: 17, G: 17, B: 17, A: 255}, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	cfg := g.arena.Config()
	tanks := g.arena.Tanks()
	cx := cfg.Width / 2
	g.drawText(screen, fmt.Sprint(tanks[0].Score), cx-50, 24, 3, tankColors[0], true)
	g.drawText(screen, "-", cx, 24, 3, textColor, true)
	g.drawText(screen, fmt.Sprint(tanks[1].Score), cx+50, 24, 3, tankColors[1], true)

	for i, t := range tanks {
		x := cx - 120
		if i == 1 {
			x = cx + 120
		}
		g.drawEffectStatus(screen, t, x, 44)
	}

	if g.arena.InputMode() == InputTouch && g.arena.State() == StatePlaying {
		for i := 0; i < g.livePads(); i++ {
			g.drawTouchPad(screen, TankID(i))
		}
	}
}

// drawEffectStatus shows the held pickup letter and, for timed effects, the
// seconds left.
func (g *Game) drawEffectStatus(screen *ebiten.Image, t *Tank, x, y float64) {
	kind := t.Effect
	switch {
	case kind != PowerUpNone:
	case t.Shield:
		kind = PowerUpShield
	case t.NextShotPiercing:
		kind = PowerUpPiercingShot
	default:
		return
	}
	cfg := g.arena.Config()
	r := math.Min(cfg.Width, cfg.Height) * 0.025
	vector.FillCircle(screen, float32(x), float32(y), float32(r), withAlpha(powerUpColors[kind], 0.7), true)
	g.drawText(screen, kind.effect().letter, x, y-6, 1, color.RGBA{R: 17, G: 17, B: 17, A: 255}, true)
	if t.Effect != PowerUpNone {
		left := float64(t.EffectEnds-g.arena.Tick()) / ticksPerSecond
		g.drawText(screen, fmt.Sprintf("%.1f", math.Max(0, left)), x, y+r+4, 1, textColor, true)
	}
}

func (g *Game) drawTouchPad(screen *ebiten.Image, id TankID) {
	pg := g.padGeometry(id)
	p := g.pads[id]
	c := tankColor(id)
	faint := withAlpha(c, 0.5)
	vector.StrokeCircle(screen, float32(pg.baseX), float32(pg.baseY), float32(pg.joyRadius), 2, faint, true)
	vector.FillCircle(screen, float32(pg.baseX+p.knobX), float32(pg.baseY+p.knobY), float32(pg.joyRadius*0.4), faint, true)
	if p.fireActive {
		vector.FillCircle(screen, float32(pg.fireX), float32(pg.fireY), float32(pg.fireRadius), faint, true)
	}
	vector.StrokeCircle(screen, float32(pg.fireX), float32(pg.fireY), float32(pg.fireRadius), 2, faint, true)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	g.drawText(screen, "TANK DUEL", w/2, h*0.22, 5, textColor, true)

	one, two := g.menuButtons()
	for i, b := range []Barrier{one, two} {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, tankColors[i], false)
		label := fmt.Sprintf("%d PLAYER", i+1)
		_, cy := b.Center()
		g.drawText(screen, label, w/2, cy-13, 2, textColor, true)
	}

	if g.arena.InputMode() == InputKeyboard {
		g.drawText(screen, "P1: WASD to Move, F or Space to Fire", w/2, h*0.8, 1, tankColors[0], true)
		g.drawText(screen, "P2: Arrows to Move, Enter to Fire", w/2, h*0.8+20, 1, tankColors[1], true)
		g.drawText(screen, "1/2 start  0 demo  G paths  T log  C copy report", w/2, h*0.8+40, 1, turretColor, true)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 178}, false)
	winner := g.arena.Winner()
	if winner == nil {
		return
	}
	var msg string
	switch g.arena.Players() {
	case 1:
		msg = "You Lose!"
		if winner.ID == 0 {
			msg = "You Win!"
		}
	default:
		msg = fmt.Sprintf("Player %d Wins!", winner.ID+1)
	}
	g.drawText(screen, msg, w/2, h/2-60, 4, tankColor(winner.ID), true)
	g.drawText(screen, "Tap or Click to Return to Menu", w/2, h/2+30, 2, textColor, true)
}

// drawText draws s with its top edge at y. When centered, x is the
// horizontal midpoint.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.RGBA, centered bool) {
	if s == "" {
		return
	}
	if centered {
		tw, _ := text.Measure(s, g.face, 0)
		x -= tw * scale / 2
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.face, op)
}
