package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps one tank's intents to keys. Fire accepts any listed key.
type keyBindings struct {
	up, down, left, right ebiten.Key
	fire                  []ebiten.Key
}

var playerKeys = [2]keyBindings{
	{up: ebiten.KeyW, down: ebiten.KeyS, left: ebiten.KeyA, right: ebiten.KeyD, fire: []ebiten.Key{ebiten.KeyF, ebiten.KeySpace}},
	{up: ebiten.KeyArrowUp, down: ebiten.KeyArrowDown, left: ebiten.KeyArrowLeft, right: ebiten.KeyArrowRight, fire: []ebiten.Key{ebiten.KeyEnter}},
}

func (kb keyBindings) read() Input {
	in := Input{
		Up:    ebiten.IsKeyPressed(kb.up),
		Down:  ebiten.IsKeyPressed(kb.down),
		Left:  ebiten.IsKeyPressed(kb.left),
		Right: ebiten.IsKeyPressed(kb.right),
	}
	for _, k := range kb.fire {
		if ebiten.IsKeyPressed(k) {
			in.Fire = true
		}
	}
	return in
}

// touchPad is one player's on-screen joystick and fire button.
type touchPad struct {
	joyID      ebiten.TouchID
	joyActive  bool
	knobX      float64 // offset from the base, clamped to the joystick radius
	knobY      float64
	fireID     ebiten.TouchID
	fireActive bool
}

// padGeometry is where a pad is drawn and hit-tested for the current size.
type padGeometry struct {
	baseX, baseY float64
	joyRadius    float64
	fireX, fireY float64
	fireRadius   float64
}

func (g *Game) padGeometry(id TankID) padGeometry {
	cfg := g.arena.Config()
	fireR := math.Min(cfg.Width, cfg.Height) * 0.08
	pg := padGeometry{
		baseX:      cfg.Width * 0.15,
		baseY:      cfg.Height - cfg.JoystickRadius*1.2,
		joyRadius:  cfg.JoystickRadius,
		fireX:      cfg.Width * 0.35,
		fireY:      cfg.Height - fireR*1.5,
		fireRadius: fireR,
	}
	if id == 1 {
		pg.baseX = cfg.Width * 0.85
		pg.fireX = cfg.Width * 0.65
	}
	return pg
}

// livePads is how many touch pads accept input this match.
func (g *Game) livePads() int {
	if g.arena.Players() == 2 {
		return 2
	}
	return 1
}

// readInputs hands each human tank its intents for the coming tick.
func (g *Game) readInputs() {
	if g.arena.InputMode() == InputTouch {
		g.updateTouches()
	}
	for i, t := range g.arena.Tanks() {
		if t.AIControlled {
			continue
		}
		id := TankID(i)
		if g.arena.InputMode() == InputTouch {
			p := g.pads[i]
			g.arena.SetInput(id, Input{
				JoystickActive: p.joyActive,
				JoyX:           p.knobX,
				JoyY:           p.knobY,
				FireButton:     p.fireActive,
			})
			continue
		}
		g.arena.SetInput(id, playerKeys[i].read())
	}
}

// updateTouches assigns new touches to controls and tracks held ones.
func (g *Game) updateTouches() {
	cfg := g.arena.Config()
	live := g.livePads()

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, tid := range g.touchIDs {
		x, y := ebiten.TouchPosition(tid)
		fx, fy := float64(x), float64(y)
		i := 0
		if fx >= cfg.Width/2 {
			i = 1
		}
		if i >= live {
			continue
		}
		pg := g.padGeometry(TankID(i))
		p := &g.pads[i]
		switch {
		case math.Hypot(fx-pg.baseX, fy-pg.baseY) < pg.joyRadius*1.5:
			p.joyID, p.joyActive = tid, true
		case math.Hypot(fx-pg.fireX, fy-pg.fireY) < pg.fireRadius*1.5:
			p.fireID, p.fireActive = tid, true
		}
	}

	for i := 0; i < live; i++ {
		p := &g.pads[i]
		if p.fireActive && inpututil.IsTouchJustReleased(p.fireID) {
			p.fireActive = false
		}
		if !p.joyActive {
			continue
		}
		if inpututil.IsTouchJustReleased(p.joyID) {
			p.joyActive = false
			p.knobX, p.knobY = 0, 0
			continue
		}
		pg := g.padGeometry(TankID(i))
		x, y := ebiten.TouchPosition(p.joyID)
		dx, dy := float64(x)-pg.baseX, float64(y)-pg.baseY
		if d := math.Hypot(dx, dy); d > pg.joyRadius {
			dx, dy = dx/d*pg.joyRadius, dy/d*pg.joyRadius
		}
		p.knobX, p.knobY = dx, dy
	}
}
