package game

import "math"

// Layout builds a barrier set for an arena of the given size.
type Layout func(w, h float64) []Barrier

// defaultLayouts cycle in order, advancing one step after every scoring hit.
var defaultLayouts = []Layout{
	layoutCrossroads,
	layoutCentralBox,
	layoutOffsetPillars,
	layoutFunnel,
}

func layoutCrossroads(w, h float64) []Barrier {
	thick := w * 0.02
	long := h * 0.25
	short := w * 0.15
	return []Barrier{
		{X: w/2 - thick/2, Y: h * 0.15, W: thick, H: long},
		{X: w/2 - thick/2, Y: h*0.85 - long, W: thick, H: long},
		{X: w*0.25 - short/2, Y: h/2 - thick/2, W: short, H: thick},
		{X: w*0.75 - short/2, Y: h/2 - thick/2, W: short, H: thick},
	}
}

func layoutCentralBox(w, h float64) []Barrier {
	size := math.Min(w, h) * 0.25
	thick := w * 0.02
	x := w/2 - size/2
	y := h/2 - size/2
	return []Barrier{
		{X: x, Y: y, W: size, H: thick},
		{X: x, Y: y + size - thick, W: size, H: thick},
		{X: x, Y: y + thick, W: thick, H: size - thick*2},
		{X: x + size - thick, Y: y + thick, W: thick, H: size - thick*2},
	}
}

func layoutOffsetPillars(w, h float64) []Barrier {
	thick := w * 0.02
	tall := h * 0.3
	wide := w * 0.2
	return []Barrier{
		{X: w*0.3 - thick/2, Y: h * 0.1, W: thick, H: tall},
		{X: w*0.7 - thick/2, Y: h*0.9 - tall, W: thick, H: tall},
		{X: w/2 - wide/2, Y: h/2 - thick/2, W: wide, H: thick},
	}
}

func layoutFunnel(w, h float64) []Barrier {
	bw := w * 0.15
	bh := h * 0.03
	pw := w * 0.02
	ph := h * 0.15
	return []Barrier{
		{X: w * 0.2, Y: h * 0.3, W: bw, H: bh},
		{X: w*0.8 - bw, Y: h * 0.3, W: bw, H: bh},
		{X: w * 0.2, Y: h*0.7 - bh, W: bw, H: bh},
		{X: w*0.8 - bw, Y: h*0.7 - bh, W: bw, H: bh},
		{X: w/2 - pw/2, Y: h/2 - ph/2, W: pw, H: ph},
	}
}

// fixedLayout ignores the arena size. Used for hand-built test arenas.
func fixedLayout(barriers []Barrier) Layout {
	return func(_, _ float64) []Barrier {
		out := make([]Barrier, len(barriers))
		copy(out, barriers)
		return out
	}
}

// RelativeLayout builds a layout from {x, y, w, h} rectangles given as
// fractions of the arena size.
func RelativeLayout(rects [][4]float64) Layout {
	return func(w, h float64) []Barrier {
		out := make([]Barrier, len(rects))
		for i, r := range rects {
			out[i] = Barrier{X: r[0] * w, Y: r[1] * h, W: r[2] * w, H: r[3] * h}
		}
		return out
	}
}
