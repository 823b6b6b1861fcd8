package game

import (
	"fmt"
	"math"
	"strings"
)

// DebugReport renders a plain-text snapshot of the match for bug reports:
// tank state, AI plans, stats and the last lastTicks ticks of the event log.
func (a *Arena) DebugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	toTick := a.tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Tank Duel debug report ---\n")
	fmt.Fprintf(&b, "match=%s state=%s players=%d input=%s\n", a.matchID, a.state, a.players, inputModeName(a.mode))
	fmt.Fprintf(&b, "arena=%.0fx%.0f layout=%d barriers=%d tick_range=[%d..%d]\n\n",
		a.cfg.Width, a.cfg.Height, a.layoutIndex, len(a.barriers), fromTick, toTick)

	for _, t := range a.tanks {
		fmt.Fprintf(&b, "== %s ==\n", t.Label)
		fmt.Fprintf(&b, "pos=(%.1f,%.1f) angle=%.2f vel=(%.2f,%.2f) score=%d recoil=%d\n",
			t.X, t.Y, t.Angle, t.VX, t.VY, t.Score, t.Recoil)
		fmt.Fprintf(&b, "effect=%s", t.Effect)
		if t.Effect != PowerUpNone {
			fmt.Fprintf(&b, " ends=%d", t.EffectEnds)
		}
		fmt.Fprintf(&b, " shield=%v pierce=%v cooldown=%.0f\n", t.Shield, t.NextShotPiercing, t.cooldownTicks(a.cfg))
		if t.AIControlled {
			writeAIState(&b, t)
		}
		b.WriteByte('\n')
	}

	if len(a.bullets) > 0 {
		b.WriteString("== bullets ==\n")
		for i, bl := range a.bullets {
			fmt.Fprintf(&b, "  %02d owner=%s pos=(%.0f,%.0f) angle=%.2f bounces=%d pierce=%v\n",
				i, a.tanks[bl.Owner].Label, bl.X, bl.Y, bl.Angle, bl.Bounces, bl.Piercing)
		}
		b.WriteByte('\n')
	}
	if len(a.powerUps) > 0 {
		b.WriteString("== pickups ==\n")
		for _, p := range a.powerUps {
			fmt.Fprintf(&b, "  %s at (%.0f,%.0f) age=%d\n", p.Kind, p.X, p.Y, a.tick-p.SpawnTick)
		}
		b.WriteByte('\n')
	}

	b.WriteString("== stats ==\n")
	b.WriteString(a.stats.Format())
	b.WriteByte('\n')

	b.WriteString("== events ==\n")
	events := a.log.FormatRange(fromTick, toTick)
	if events == "" {
		b.WriteString("(no events in range)\n")
	} else {
		b.WriteString(events)
	}
	return b.String()
}

func writeAIState(b *strings.Builder, t *Tank) {
	st := &t.AI
	fmt.Fprintf(b, "ai: target=%s at (%.0f,%.0f) next_decision=%s path=%d/%d\n",
		st.TargetKind, st.Target[0], st.Target[1], st.decisionTimer, st.PathIndex, len(st.Path))
	if st.Evasion.Active {
		fmt.Fprintf(b, "ai: evading heading=%.2f ticks_left=%d\n", st.Evasion.Angle, st.Evasion.Timer)
	}
	if st.PathIndex < len(st.Path) {
		wp := st.Path[st.PathIndex]
		fmt.Fprintf(b, "ai: next waypoint (%.0f,%.0f) dist=%.0f\n", wp[0], wp[1], math.Hypot(wp[0]-t.X, wp[1]-t.Y))
	}
}

func inputModeName(m InputMode) string {
	if m == InputTouch {
		return "touch"
	}
	return "keyboard"
}
