package game

import (
	"fmt"
	"math"
)

// Bullet is a shell in flight. It bounces once and dies on the second bounce.
type Bullet struct {
	X, Y     float64
	Angle    float64
	Owner    TankID
	Bounces  int
	Piercing bool
	Trail    [][2]float64 // oldest first, at most trailLength points

	// passing is the barrier a piercing shot is travelling through; it is
	// ignored until the bullet comes out the other side.
	passing   Barrier
	inPassing bool
}

// fire spawns a bullet at the turret tip and starts the cooldown.
func (a *Arena) fire(t *Tank) {
	t.lastShot = a.tick
	t.hasFired = true
	t.Recoil = recoilKick
	reach := a.cfg.TurretLength - float64(t.Recoil)
	b := &Bullet{
		X:        t.X + math.Cos(t.Angle)*reach,
		Y:        t.Y + math.Sin(t.Angle)*reach,
		Angle:    t.Angle,
		Owner:    t.ID,
		Piercing: t.NextShotPiercing,
	}
	t.NextShotPiercing = false
	a.bullets = append(a.bullets, b)

	a.stats.tank(t.ID).Shots++
	a.log.Add(a.tick, t.Label, "fire", "shot", fmt.Sprintf("(%.0f,%.0f) a=%.2f pierce=%v", b.X, b.Y, b.Angle, b.Piercing), b.Angle)
}

// updateBullets moves every bullet in list order. The first bullet to hit a
// tank it does not own is resolved and ends bullet processing for the tick.
func (a *Arena) updateBullets() {
	for i := 0; i < len(a.bullets); {
		b := a.bullets[i]
		prevX, prevY := b.X, b.Y
		b.X += math.Cos(b.Angle) * bulletSpeed
		b.Y += math.Sin(b.Angle) * bulletSpeed
		b.Trail = append(b.Trail, [2]float64{b.X, b.Y})
		if len(b.Trail) > trailLength {
			b.Trail = b.Trail[1:]
		}

		if a.bounceBullet(b, prevX, prevY) {
			a.log.Add(a.tick, a.tanks[b.Owner].Label, "bullet", "expire", fmt.Sprintf("(%.0f,%.0f)", b.X, b.Y), 0)
			a.removeBullet(i)
			continue
		}

		for _, t := range a.tanks {
			if t.ID == b.Owner {
				continue
			}
			if circlesOverlap(b.X, b.Y, bulletSize, t.X, t.Y, a.cfg.TankWidth/2) {
				a.removeBullet(i)
				a.resolveHit(a.tanks[b.Owner], t)
				return
			}
		}
		i++
	}
}

func (a *Arena) removeBullet(i int) {
	a.bullets = append(a.bullets[:i], a.bullets[i+1:]...)
}

// bounceBullet resolves walls first, then barriers only if no wall was hit.
// It returns true when the bullet must be removed.
func (a *Arena) bounceBullet(b *Bullet, prevX, prevY float64) bool {
	bounced := false

	if b.X < bulletSize || b.X > a.cfg.Width-bulletSize {
		b.Angle = wrapAngle(math.Pi - b.Angle)
		b.X = clamp(b.X, bulletSize, a.cfg.Width-bulletSize)
		bounced = true
	}
	if b.Y < bulletSize || b.Y > a.cfg.Height-bulletSize {
		b.Angle = wrapAngle(-b.Angle)
		b.Y = clamp(b.Y, bulletSize, a.cfg.Height-bulletSize)
		bounced = true
	}

	if b.inPassing && !b.passing.Contains(b.X, b.Y) {
		b.inPassing = false
	}
	if !bounced {
		for _, bar := range a.barriers {
			if !bar.Contains(b.X, b.Y) {
				continue
			}
			if b.inPassing && bar == b.passing {
				continue
			}
			if b.Piercing {
				b.Piercing = false
				b.passing, b.inPassing = bar, true
				a.stats.tank(b.Owner).Pierces++
				a.log.Add(a.tick, a.tanks[b.Owner].Label, "bullet", "pierce", fmt.Sprintf("(%.0f,%.0f)", b.X, b.Y), 0)
				break
			}
			bounced = true
			// Entered through a left/right face: flip the horizontal component.
			if prevX <= bar.X || prevX >= bar.X+bar.W {
				b.Angle = wrapAngle(math.Pi - b.Angle)
			} else {
				b.Angle = wrapAngle(-b.Angle)
			}
			b.X, b.Y = prevX, prevY
			break
		}
	}

	if !bounced {
		return false
	}
	if b.Bounces > 0 {
		return true
	}
	b.Bounces++
	a.stats.tank(b.Owner).Bounces++
	a.log.Add(a.tick, a.tanks[b.Owner].Label, "bullet", "bounce", fmt.Sprintf("(%.0f,%.0f) a=%.2f", b.X, b.Y, b.Angle), b.Angle)
	return false
}

// resolveHit handles a bullet from scorer striking target. A shield absorbs
// the hit; otherwise the scorer gains a point, the layout advances and either
// the match ends or a new round starts.
func (a *Arena) resolveHit(scorer, target *Tank) {
	if target.Shield {
		target.Shield = false
		a.stats.tank(scorer.ID).ShieldsBroken++
		a.log.Add(a.tick, target.Label, "hit", "shield", "shield absorbed "+scorer.Label+" shot", 0)
		return
	}

	scorer.Score++
	a.stats.tank(scorer.ID).Hits++
	a.log.Add(a.tick, scorer.Label, "hit", "score", fmt.Sprintf("hit %s score=%d", target.Label, scorer.Score), float64(scorer.Score))

	a.nextLayout()
	if a.checkWin() {
		return
	}
	a.ResetRound()
	a.log.Add(a.tick, "--", "match", "round", fmt.Sprintf("%d-%d", a.tanks[0].Score, a.tanks[1].Score), 0)
}

// checkWin ends the match once a tank reaches the winning score.
func (a *Arena) checkWin() bool {
	for _, t := range a.tanks {
		if t.Score >= winningScore {
			a.state = StateGameOver
			a.winner = t.ID
			a.stats.WinnerID = t.ID
			a.stats.Ticks = a.tick
			a.log.Add(a.tick, t.Label, "match", "win", fmt.Sprintf("%d-%d", a.tanks[0].Score, a.tanks[1].Score), float64(t.Score))
			return true
		}
	}
	return false
}
