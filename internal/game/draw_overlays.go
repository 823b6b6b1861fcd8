package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// targetColors tints the AI path by what the tank is heading for.
var targetColors = map[aiTargetKind]color.RGBA{
	aiTargetNone:     {R: 120, G: 120, B: 120, A: 120},
	aiTargetPowerUp:  {R: 255, G: 220, B: 0, A: 160},
	aiTargetOpponent: {R: 255, G: 60, B: 60, A: 160},
	aiTargetCover:    {R: 60, G: 160, B: 255, A: 160},
}

// drawNavGrid shades blocked cells and faintly outlines the grid.
func (g *Game) drawNavGrid(screen *ebiten.Image) {
	ng := g.arena.NavGrid()
	cols, rows := ng.Size()
	cs := float32(navCellSize)
	blocked := color.RGBA{R: 120, G: 30, B: 30, A: 70}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if ng.IsBlocked(col, row) {
				vector.FillRect(screen, float32(col)*cs, float32(row)*cs, cs, cs, blocked, false)
			}
		}
	}
	line := color.RGBA{R: 40, G: 40, B: 50, A: 60}
	for col := 0; col <= cols; col++ {
		x := float32(col) * cs
		vector.StrokeLine(screen, x, 0, x, float32(rows)*cs, 1.0, line, false)
	}
	for row := 0; row <= rows; row++ {
		y := float32(row) * cs
		vector.StrokeLine(screen, 0, y, float32(cols)*cs, y, 1.0, line, false)
	}
}

// drawAIPaths draws each AI tank's remaining smoothed path as a dashed line
// with a marker on the destination, plus a short status panel.
func (g *Game) drawAIPaths(screen *ebiten.Image) {
	for _, t := range g.arena.Tanks() {
		if !t.AIControlled {
			continue
		}
		st := &t.AI
		col := targetColors[st.TargetKind]

		px, py := t.X, t.Y
		for i := st.PathIndex; i < len(st.Path); i++ {
			wp := st.Path[i]
			drawDashedLine(screen, px, py, wp[0], wp[1], col)
			vector.StrokeCircle(screen, float32(wp[0]), float32(wp[1]), 3, 1.0, col, false)
			px, py = wp[0], wp[1]
		}
		if st.TargetKind != aiTargetNone {
			drawMarker(screen, st.Target[0], st.Target[1], col)
		}
		if st.Evasion.Active {
			ex := t.X + math.Cos(st.Evasion.Angle)*40
			ey := t.Y + math.Sin(st.Evasion.Angle)*40
			vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(ex), float32(ey), 2.0, color.RGBA{R: 255, G: 255, B: 255, A: 180}, false)
		}
		g.drawAIInfo(screen, t)
	}
}

func drawDashedLine(screen *ebiten.Image, x0, y0, x1, y1 float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	total := math.Hypot(dx, dy)
	if total < 1 {
		return
	}
	const dashLen, gapLen = 8.0, 6.0
	ndx, ndy := dx/total, dy/total
	for drawn := 0.0; drawn < total; drawn += dashLen + gapLen {
		end := math.Min(drawn+dashLen, total)
		vector.StrokeLine(screen,
			float32(x0+ndx*drawn), float32(y0+ndy*drawn),
			float32(x0+ndx*end), float32(y0+ndy*end),
			1.0, c, false)
	}
}

// drawMarker draws a small octagon.
func drawMarker(screen *ebiten.Image, x, y float64, c color.RGBA) {
	const r = 6.0
	for a := 0; a < 8; a++ {
		ang0 := float64(a) / 8.0 * 2 * math.Pi
		ang1 := float64(a+1) / 8.0 * 2 * math.Pi
		vector.StrokeLine(screen,
			float32(x+r*math.Cos(ang0)), float32(y+r*math.Sin(ang0)),
			float32(x+r*math.Cos(ang1)), float32(y+r*math.Sin(ang1)),
			1.0, c, false)
	}
}

func (g *Game) drawAIInfo(screen *ebiten.Image, t *Tank) {
	st := &t.AI
	cfg := g.arena.Config()
	lines := []string{
		fmt.Sprintf("%s -> %s", t.Label, st.TargetKind),
		fmt.Sprintf("replan in %s", st.decisionTimer),
		fmt.Sprintf("path %d/%d", st.PathIndex, len(st.Path)),
	}
	if st.Evasion.Active {
		lines = append(lines, fmt.Sprintf("evading %d", st.Evasion.Timer))
	}

	const lineH = 14
	const padX = 6
	const padY = 4
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	w := float32(maxLen*6 + padX*2)
	h := float32(len(lines)*lineH + padY*2)
	x := float32(t.X + cfg.TankHeight)
	y := float32(t.Y) - h/2
	if float64(x+w) > cfg.Width {
		x = float32(t.X-cfg.TankHeight) - w
	}
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 15, G: 15, B: 20, A: 200}, false)
	vector.StrokeRect(screen, x, y, w, h, 1.0, withAlpha(tankColor(t.ID), 0.6), false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(x)+padX, int(y)+padY+i*lineH)
	}
}
