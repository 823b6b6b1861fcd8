package game

import (
	"fmt"
	"math"
)

// PowerUpKind is the closed set of pickups. PowerUpNone marks "no effect".
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpSpeedBoost
	PowerUpRapidFire
	PowerUpShield
	PowerUpPiercingShot
	powerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpNone:
		return "none"
	case PowerUpSpeedBoost:
		return "speed_boost"
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpShield:
		return "shield"
	case PowerUpPiercingShot:
		return "piercing_shot"
	default:
		return "unknown"
	}
}

// powerUpGrant says how a pickup is held once collected.
type powerUpGrant int

const (
	grantTimed    powerUpGrant = iota // sets Effect until EffectEnds
	grantShield                       // standing flag, consumed by a hit
	grantPiercing                     // standing flag, consumed by the next shot
)

// powerUpEffect bundles the gameplay parameters for a pickup kind.
type powerUpEffect struct {
	grant       powerUpGrant
	speedMul    float64
	cooldownMul float64
	letter      string
}

// powerUpEffects is indexed by PowerUpKind. Effects are mutually exclusive:
// collecting any pickup clears whatever the tank held before.
var powerUpEffects = [powerUpKindCount]powerUpEffect{
	PowerUpNone:         {grant: grantTimed, speedMul: 1.0, cooldownMul: 1.0},
	PowerUpSpeedBoost:   {grant: grantTimed, speedMul: 1.5, cooldownMul: 1.0, letter: "S"},
	PowerUpRapidFire:    {grant: grantTimed, speedMul: 1.0, cooldownMul: 0.4, letter: "F"},
	PowerUpShield:       {grant: grantShield, speedMul: 1.0, cooldownMul: 1.0, letter: "H"},
	PowerUpPiercingShot: {grant: grantPiercing, speedMul: 1.0, cooldownMul: 1.0, letter: "P"},
}

// effect returns the parameters for this kind.
func (k PowerUpKind) effect() powerUpEffect {
	if k < 0 || k >= powerUpKindCount {
		return powerUpEffects[PowerUpNone]
	}
	return powerUpEffects[k]
}

// PowerUp is a pickup lying on the arena floor.
type PowerUp struct {
	X, Y      float64
	Kind      PowerUpKind
	SpawnTick int
}

// maxSpawnAttempts bounds the rejection sampler so a nearly-full layout
// skips a spawn instead of spinning.
const maxSpawnAttempts = 500

// spawnPowerUp adds a pickup once the spawn interval has elapsed and a slot
// is free. The interval restarts only when a spawn is attempted.
func (a *Arena) spawnPowerUp() {
	if a.tick-a.lastPowerUpSpawn < a.cfg.SpawnIntervalTicks || len(a.powerUps) >= maxPowerUps {
		return
	}
	a.lastPowerUpSpawn = a.tick

	kind := PowerUpKind(1 + a.rng.Intn(int(powerUpKindCount)-1))
	r := a.cfg.PowerUpRadius
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		x := r + a.rng.Float64()*(a.cfg.Width-r*2)
		y := r + a.rng.Float64()*(a.cfg.Height-r*2)
		if insideAny(x, y, r, a.barriers) {
			continue
		}
		a.powerUps = append(a.powerUps, &PowerUp{X: x, Y: y, Kind: kind, SpawnTick: a.tick})
		a.log.Add(a.tick, "--", "powerup", "spawn", fmt.Sprintf("%s at (%.0f,%.0f)", kind, x, y), 0)
		return
	}
	a.log.Add(a.tick, "--", "powerup", "spawn_failed", kind.String(), maxSpawnAttempts)
}

// expirePowerUps drops pickups that have outlived their lifespan.
func (a *Arena) expirePowerUps() {
	kept := a.powerUps[:0]
	for _, p := range a.powerUps {
		if a.tick-p.SpawnTick < a.cfg.PowerUpLifeTicks {
			kept = append(kept, p)
			continue
		}
		a.log.Add(a.tick, "--", "powerup", "expire", p.Kind.String(), 0)
	}
	a.powerUps = kept
}

// collectPowerUps hands each pickup to the first tank (in tank order) that
// overlaps it.
func (a *Arena) collectPowerUps() {
	for i := len(a.powerUps) - 1; i >= 0; i-- {
		p := a.powerUps[i]
		for _, t := range a.tanks {
			if !circlesOverlap(p.X, p.Y, a.cfg.PowerUpRadius, t.X, t.Y, a.cfg.TankWidth/2) {
				continue
			}
			a.applyPowerUp(t, p.Kind)
			a.powerUps = append(a.powerUps[:i], a.powerUps[i+1:]...)
			break
		}
	}
}

// applyPowerUp clears every held effect, then grants the new one.
func (a *Arena) applyPowerUp(t *Tank, kind PowerUpKind) {
	t.clearPowerUps()

	switch kind.effect().grant {
	case grantShield:
		t.Shield = true
	case grantPiercing:
		t.NextShotPiercing = true
	default:
		t.Effect = kind
		t.EffectEnds = a.tick + a.cfg.EffectTicks
	}
	a.stats.tank(t.ID).PowerUps++
	a.log.Add(a.tick, t.Label, "powerup", "collect", kind.String(), 0)
}

// nearestPowerUp returns the pickup closest to (x,y), or nil.
func (a *Arena) nearestPowerUp(x, y float64) *PowerUp {
	var best *PowerUp
	bestDist := math.Inf(1)
	for _, p := range a.powerUps {
		if d := math.Hypot(x-p.X, y-p.Y); d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}
