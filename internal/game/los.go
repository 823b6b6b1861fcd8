package game

import "math"

// LineOfSightClear samples the segment from (ax,ay) to (bx,by) roughly every
// bulletSize pixels and fails if any sample falls inside a barrier.
// Endpoints are not sampled.
func LineOfSightClear(ax, ay, bx, by float64, barriers []Barrier) bool {
	dx := bx - ax
	dy := by - ay
	steps := int(math.Floor(math.Hypot(dx, dy) / bulletSize))

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		if insideAny(ax+dx*t, ay+dy*t, 0, barriers) {
			return false
		}
	}
	return true
}

// SmoothPath drops intermediate waypoints while the last kept point can see
// the next candidate. The first and last points are always kept; paths of
// two points or fewer are returned unchanged.
func SmoothPath(path [][2]float64, barriers []Barrier) [][2]float64 {
	if len(path) <= 2 {
		return path
	}

	out := [][2]float64{path[0]}
	anchor := path[0]
	for i := 2; i < len(path); i++ {
		if !LineOfSightClear(anchor[0], anchor[1], path[i][0], path[i][1], barriers) {
			out = append(out, path[i-1])
			anchor = path[i-1]
		}
	}
	return append(out, path[len(path)-1])
}
