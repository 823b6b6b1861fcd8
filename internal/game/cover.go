package game

import "math"

// findCover looks for a hiding spot on the far side of each barrier from
// opp. A spot qualifies when it is inside the arena, outside every barrier,
// hidden from opp and reachable on the nav grid. The closest one to ai wins.
func (a *Arena) findCover(ai, opp *Tank) ([2]float64, bool) {
	var best [2]float64
	found := false
	bestDist := math.Inf(1)
	pad := a.cfg.TankWidth * aiCoverPaddingFrac

	for _, b := range a.barriers {
		cx, cy := b.Center()
		dx := cx - opp.X
		dy := cy - opp.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			continue
		}
		reach := math.Max(b.W, b.H)/2 + pad
		sx := cx + dx/d*reach
		sy := cy + dy/d*reach

		if sx < a.cfg.TankWidth/2 || sx > a.cfg.Width-a.cfg.TankWidth/2 ||
			sy < a.cfg.TankHeight/2 || sy > a.cfg.Height-a.cfg.TankHeight/2 {
			continue
		}
		if insideAny(sx, sy, 0, a.barriers) {
			continue
		}
		if LineOfSightClear(sx, sy, opp.X, opp.Y, a.barriers) {
			continue
		}
		dist := math.Hypot(ai.X-sx, ai.Y-sy)
		if dist >= bestDist || !a.reachable(ai.X, ai.Y, sx, sy) {
			continue
		}
		bestDist = dist
		best = [2]float64{sx, sy}
		found = true
	}
	return best, found
}

// reachable reports whether the nav grid has a route from one point to the
// other. Points in the same cell are trivially reachable.
func (a *Arena) reachable(fx, fy, tx, ty float64) bool {
	fcx, fcy := a.navGrid.WorldToCell(fx, fy)
	tcx, tcy := a.navGrid.WorldToCell(tx, ty)
	if fcx == tcx && fcy == tcy {
		return true
	}
	return len(a.navGrid.FindPath(fx, fy, tx, ty)) > 0
}
