package game

import (
	"fmt"
	"math"
	"time"
)

// aiTargetKind records why the AI chose its current destination.
type aiTargetKind int

const (
	aiTargetNone aiTargetKind = iota
	aiTargetPowerUp
	aiTargetOpponent
	aiTargetCover
)

func (k aiTargetKind) String() string {
	switch k {
	case aiTargetPowerUp:
		return "powerup"
	case aiTargetOpponent:
		return "opponent"
	case aiTargetCover:
		return "cover"
	default:
		return "none"
	}
}

// updateAI runs the decision pipeline for a computer-controlled tank in
// strict priority order: evasion, periodic replan, path following, firing,
// then movement. It shares movement and firing primitives with human tanks.
func (a *Arena) updateAI(ai, opp *Tank) {
	st := &ai.AI
	st.decisionTimer -= aiNominalStep
	ai.tickTimers(a.tick)
	prevX, prevY := ai.X, ai.Y
	defer func() {
		a.clampTank(ai)
		ai.VX, ai.VY = ai.X-prevX, ai.Y-prevY
	}()

	if a.evade(ai, opp) {
		return
	}

	if st.decisionTimer <= 0 {
		a.replan(ai, opp)
	}

	moving := a.followPath(ai, opp)
	a.aiFire(ai, opp, aiAimTolerance)
	if moving {
		a.moveTank(ai, ai.Angle, ai.Speed())
	}
}

// evade handles the dodge layer. It returns true while a dodge is in
// progress, which suppresses every lower layer for the tick.
func (a *Arena) evade(ai, opp *Tank) bool {
	ev := &ai.AI.Evasion
	if !ev.Active && !ai.Shield {
		if threat := a.incomingBullet(ai); threat != nil {
			side := 1.0
			if a.rng.Float64() <= 0.5 {
				side = -1.0
			}
			ev.Active = true
			ev.Timer = aiEvasionTicks
			ev.Angle = threat.Angle + math.Pi/2*side
			a.stats.tank(ai.ID).Evasions++
			a.think(ai, "dodge", fmt.Sprintf("incoming shell, dodging %s", sideName(side)))
		}
	}
	if !ev.Active {
		return false
	}

	ev.Timer--
	if ev.Timer <= 0 {
		ev.Active = false
		return false
	}

	a.moveTank(ai, ev.Angle, ai.Speed())

	// Keep the turret on the opponent while sidestepping. The aim check uses
	// the error before this tick's turn.
	px, py := a.predictPosition(ai, opp)
	var diff float64
	ai.Angle, diff = turnToward(ai.Angle, math.Atan2(py-ai.Y, px-ai.X), tankTurnSpeed)
	if math.Abs(diff) < aiEvadeAimTolerance &&
		LineOfSightClear(ai.X, ai.Y, opp.X, opp.Y, a.barriers) &&
		ai.canFire(a.tick, a.cfg) {
		a.fire(ai)
	}
	return true
}

func sideName(side float64) string {
	if side > 0 {
		return "right"
	}
	return "left"
}

// incomingBullet returns the enemy bullet with the least time to impact among
// those within the threat radius and heading roughly at ai.
func (a *Arena) incomingBullet(ai *Tank) *Bullet {
	var threat *Bullet
	best := math.Inf(1)
	for _, b := range a.bullets {
		if b.Owner == ai.ID {
			continue
		}
		dx := ai.X - b.X
		dy := ai.Y - b.Y
		dist := math.Hypot(dx, dy)
		if dist > a.cfg.Width*aiThreatRadiusFrac {
			continue
		}
		if math.Abs(wrapAngle(b.Angle-math.Atan2(dy, dx))) >= aiThreatAngle {
			continue
		}
		if tti := dist / bulletSpeed; tti < best {
			best = tti
			threat = b
		}
	}
	return threat
}

// replan picks a destination and plans a smoothed path to it.
func (a *Arena) replan(ai, opp *Tank) {
	st := &ai.AI
	st.decisionTimer = aiDecisionMin + time.Duration(a.rng.Float64()*float64(aiDecisionJitter))
	a.stats.tank(ai.ID).Replans++

	target := [2]float64{opp.X, opp.Y}
	kind := aiTargetOpponent
	advantaged := ai.Shield || ai.Effect != PowerUpNone
	near := math.Hypot(ai.X-opp.X, ai.Y-opp.Y) < a.cfg.Width*aiEngageRangeFrac
	if p := a.nearestPowerUp(ai.X, ai.Y); p != nil && !(near && advantaged) {
		target = [2]float64{p.X, p.Y}
		kind = aiTargetPowerUp
	}

	exposed := !ai.Shield && LineOfSightClear(ai.X, ai.Y, opp.X, opp.Y, a.barriers)
	if exposed {
		if spot, ok := a.findCover(ai, opp); ok {
			target = spot
			kind = aiTargetCover
		}
	}

	st.Target = target
	st.TargetKind = kind
	raw := a.navGrid.FindPath(ai.X, ai.Y, target[0], target[1])
	st.Path = SmoothPath(raw, a.barriers)
	st.PathIndex = 0

	a.log.Add(a.tick, ai.Label, "ai", "replan",
		fmt.Sprintf("%s at (%.0f,%.0f) waypoints=%d", kind, target[0], target[1], len(st.Path)), float64(len(st.Path)))
	a.think(ai, "plan", fmt.Sprintf("heading for %s, %d waypoints", kind, len(st.Path)))
}

// followPath steers toward the next waypoint and reports whether the tank
// should drive forward this tick. Without a path it turns to face opp.
func (a *Arena) followPath(ai, opp *Tank) bool {
	st := &ai.AI
	if st.PathIndex < len(st.Path) {
		wp := st.Path[st.PathIndex]
		if math.Hypot(wp[0]-ai.X, wp[1]-ai.Y) < navCellSize*aiWaypointReach {
			st.PathIndex++
		}
		if st.PathIndex < len(st.Path) {
			next := st.Path[st.PathIndex]
			var diff float64
			ai.Angle, diff = turnToward(ai.Angle, math.Atan2(next[1]-ai.Y, next[0]-ai.X), tankTurnSpeed)
			return math.Abs(diff) < math.Pi/2
		}
		return false
	}

	ai.Angle, _ = turnToward(ai.Angle, math.Atan2(opp.Y-ai.Y, opp.X-ai.X), tankTurnSpeed)
	return false
}

// aiFire shoots at the predicted opponent position when the aim error is
// within tolerance, the line of fire is clear and the cooldown has elapsed.
func (a *Arena) aiFire(ai, opp *Tank, tolerance float64) {
	px, py := a.predictPosition(ai, opp)
	aimErr := math.Abs(wrapAngle(math.Atan2(py-ai.Y, px-ai.X) - ai.Angle))
	if aimErr < tolerance &&
		LineOfSightClear(ai.X, ai.Y, opp.X, opp.Y, a.barriers) &&
		ai.canFire(a.tick, a.cfg) {
		a.fire(ai)
	}
}

// predictPosition leads a moving opponent by the bullet's travel time and
// adds jitter that grows with distance. Close or stationary opponents are
// aimed at directly.
func (a *Arena) predictPosition(ai, opp *Tank) (float64, float64) {
	dist := math.Hypot(opp.X-ai.X, opp.Y-ai.Y)
	if dist < a.cfg.TankWidth*2 || (opp.VX == 0 && opp.VY == 0) {
		return opp.X, opp.Y
	}

	lead := dist / bulletSpeed
	px := opp.X + opp.VX*lead
	py := opp.Y + opp.VY*lead

	spread := dist / (a.cfg.Width * 0.5)
	px += (a.rng.Float64() - 0.5) * a.cfg.TankWidth * spread
	py += (a.rng.Float64() - 0.5) * a.cfg.TankWidth * spread

	return clamp(px, 0, a.cfg.Width), clamp(py, 0, a.cfg.Height)
}

// think records an AI decision in the on-screen thought log.
func (a *Arena) think(ai *Tank, key, msg string) {
	a.thought.Add(a.tick, ai.Label, ai.ID, msg)
	a.log.AddVerbose(a.tick, ai.Label, "ai", key, msg, 0)
}
