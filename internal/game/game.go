package game

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// statusFrames is how long a status line (e.g. "report copied") stays up.
const statusFrames = 120

// reportTicks is how much event history the copied debug report carries.
const reportTicks = 600

// Options configures the desktop front-end.
type Options struct {
	Width, Height int
	// Players starts a match immediately: 0 demo, 1 vs computer, 2 local.
	// Any other value opens the menu.
	Players   int
	Touch     bool
	Seed      int64
	DebugPath bool
	ShowLog   bool
	// Layouts replaces the built-in barrier cycle when non-empty.
	Layouts []Layout
}

// Game adapts an Arena to ebiten: it reads input, advances the arena once
// per frame and draws the result.
type Game struct {
	arena *Arena

	width, height int
	resizePending bool

	pads     [2]touchPad
	touchIDs []ebiten.TouchID

	face *text.GoXFace

	showPaths bool
	showLog   bool

	frame       int
	status      string
	statusUntil int
}

// New builds the front-end and its arena.
func New(o Options) *Game {
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = 1280, 720
	}
	mode := InputKeyboard
	if o.Touch {
		mode = InputTouch
	}
	opts := []Option{
		WithArenaSize(float64(o.Width), float64(o.Height)),
		WithInputMode(mode),
	}
	if o.Seed != 0 {
		opts = append(opts, WithSeed(o.Seed))
	}
	if len(o.Layouts) > 0 {
		opts = append(opts, WithLayouts(o.Layouts...))
	}

	g := &Game{
		arena:     NewArena(opts...),
		width:     o.Width,
		height:    o.Height,
		face:      text.NewGoXFace(basicfont.Face7x13),
		showPaths: o.DebugPath,
		showLog:   o.ShowLog,
	}
	if o.Players >= 0 && o.Players <= 2 {
		g.arena.InitMatch(o.Players)
	}
	return g
}

// Arena exposes the simulation for tooling.
func (g *Game) Arena() *Arena { return g.arena }

func (g *Game) Update() error {
	g.frame++
	if g.resizePending {
		g.resizePending = false
		g.arena.Resize(float64(g.width), float64(g.height))
	}
	g.handleDebugKeys()

	switch g.arena.State() {
	case StateMenu:
		g.updateMenu()
	case StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.arena.ShowMenu()
			return nil
		}
		g.readInputs()
		g.arena.Advance()
	case StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])) > 0 {
			g.arena.ShowMenu()
		}
	}
	return nil
}

// handleDebugKeys processes toggles that work in every state.
func (g *Game) handleDebugKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showPaths = !g.showPaths
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showLog = !g.showLog
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.arena.DebugReport(reportTicks)); err != nil {
			g.setStatus(fmt.Sprintf("copy failed: %v", err))
		} else {
			g.setStatus("debug report copied")
		}
	}
}

func (g *Game) updateMenu() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.startMatch(1)
		return
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.startMatch(2)
		return
	case inpututil.IsKeyJustPressed(ebiten.Key0):
		g.startMatch(0)
		return
	}

	var taps [][2]int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		taps = append(taps, [2]int{x, y})
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, [2]int{x, y})
	}
	one, two := g.menuButtons()
	for _, p := range taps {
		x, y := float64(p[0]), float64(p[1])
		if one.ContainsPadded(x, y, 0) {
			g.startMatch(1)
			return
		}
		if two.ContainsPadded(x, y, 0) {
			g.startMatch(2)
			return
		}
	}
}

func (g *Game) startMatch(players int) {
	g.pads = [2]touchPad{}
	g.arena.InitMatch(players)
}

// menuButtons returns the 1-player and 2-player button rectangles.
func (g *Game) menuButtons() (Barrier, Barrier) {
	w, h := float64(g.width), float64(g.height)
	bw, bh := w*0.4, h*0.1
	return Barrier{X: w/2 - bw/2, Y: h * 0.45, W: bw, H: bh},
		Barrier{X: w/2 - bw/2, Y: h * 0.6, W: bw, H: bh}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.frame + statusFrames
}

// Layout tracks the window size; the arena follows it on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.resizePending = true
	}
	return g.width, g.height
}
