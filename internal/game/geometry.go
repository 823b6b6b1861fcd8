package game

import "math"

// Barrier is an axis-aligned wall, anchored at its top-left corner.
type Barrier struct {
	X, Y, W, H float64
}

// Contains reports whether (x,y) lies strictly inside the barrier.
func (b Barrier) Contains(x, y float64) bool {
	return b.ContainsPadded(x, y, 0)
}

// ContainsPadded reports whether (x,y) lies strictly inside the barrier grown
// by pad on every side.
func (b Barrier) ContainsPadded(x, y, pad float64) bool {
	return x > b.X-pad && x < b.X+b.W+pad &&
		y > b.Y-pad && y < b.Y+b.H+pad
}

// Center returns the barrier's midpoint.
func (b Barrier) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// circlesOverlap is true when the centre distance is below the radius sum.
func circlesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return math.Hypot(ax-bx, ay-by) < ar+br
}

// rectOverlaps tests a box centred on (cx,cy) against a barrier.
func rectOverlaps(cx, cy, w, h float64, b Barrier) bool {
	left := cx - w/2
	right := cx + w/2
	top := cy - h/2
	bottom := cy + h/2
	return left < b.X+b.W && right > b.X &&
		top < b.Y+b.H && bottom > b.Y
}

// insideAny reports whether (x,y) is strictly inside any barrier grown by pad.
func insideAny(x, y, pad float64, barriers []Barrier) bool {
	for _, b := range barriers {
		if b.ContainsPadded(x, y, pad) {
			return true
		}
	}
	return false
}

// wrapAngle folds an angle into (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// turnToward rotates current toward target by at most maxStep along the
// shorter arc. It returns the new heading and the wrapped difference that
// remained before the turn.
func turnToward(current, target, maxStep float64) (float64, float64) {
	diff := wrapAngle(target - current)
	step := math.Min(math.Abs(diff), maxStep)
	if diff < 0 {
		step = -step
	}
	return current + step, diff
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
