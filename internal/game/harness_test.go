package game

import (
	"math"
	"time"
)

// TestSim is a headless arena wrapper for tests. Arena options are applied at
// construction, then the match is started, then entity options place tanks,
// bullets and pickups on top of the fresh round.
type TestSim struct {
	Arena  *Arena
	SimLog *SimLog
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptArena  simOptionKind = iota // arena construction options
	simOptMatch                       // player count, before InitMatch
	simOptEntity                      // entities, after InitMatch
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind  simOptionKind
	arena Option
	fn    func(*TestSim)
}

func withArena(o Option) SimOption {
	return SimOption{kind: simOptArena, arena: o}
}

func withPlayers(n int) SimOption {
	return SimOption{kind: simOptMatch, fn: func(ts *TestSim) {
		ts.Arena.players = n
	}}
}

func entity(fn func(*TestSim)) SimOption {
	return SimOption{kind: simOptEntity, fn: fn}
}

// withTank places a tank and points it.
func withTank(id TankID, x, y, angle float64) SimOption {
	return entity(func(ts *TestSim) {
		t := ts.Arena.tanks[id]
		t.X, t.Y, t.Angle = x, y, angle
	})
}

// withInput holds the given intents for every following tick.
func withInput(id TankID, in Input) SimOption {
	return entity(func(ts *TestSim) {
		ts.Arena.SetInput(id, in)
	})
}

func withBullet(owner TankID, x, y, angle float64) SimOption {
	return entity(func(ts *TestSim) {
		ts.Arena.bullets = append(ts.Arena.bullets, &Bullet{X: x, Y: y, Angle: angle, Owner: owner})
	})
}

func withPowerUp(kind PowerUpKind, x, y float64) SimOption {
	return entity(func(ts *TestSim) {
		ts.Arena.powerUps = append(ts.Arena.powerUps, &PowerUp{X: x, Y: y, Kind: kind, SpawnTick: ts.Arena.tick})
	})
}

// withEffect grants a pickup as if it had just been collected.
func withEffect(id TankID, kind PowerUpKind) SimOption {
	return entity(func(ts *TestSim) {
		ts.Arena.applyPowerUp(ts.Arena.tanks[id], kind)
	})
}

// withNoSpawns stops the spawn timer from ever firing.
func withNoSpawns() SimOption {
	return entity(func(ts *TestSim) {
		ts.Arena.lastPowerUpSpawn = math.MaxInt32
	})
}

// withDecisionDelay postpones the AI's first replan.
func withDecisionDelay(id TankID, ticks int) SimOption {
	return entity(func(ts *TestSim) {
		ts.Arena.tanks[id].AI.decisionTimer = aiNominalStep * time.Duration(ticks)
	})
}

// NewTestSim builds an arena (default 1000x600, seed 1), starts a 2-player
// match so neither tank is computer-driven unless asked, then places entities.
func NewTestSim(opts ...SimOption) *TestSim {
	arenaOpts := []Option{WithArenaSize(1000, 600), WithSeed(1)}
	for _, o := range opts {
		if o.kind == simOptArena {
			arenaOpts = append(arenaOpts, o.arena)
		}
	}
	ts := &TestSim{Arena: NewArena(arenaOpts...)}

	ts.Arena.players = 2
	for _, o := range opts {
		if o.kind == simOptMatch {
			o.fn(ts)
		}
	}
	ts.Arena.InitMatch(ts.Arena.players)
	ts.SimLog = ts.Arena.Log()

	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// Tank returns a tank by ID.
func (ts *TestSim) Tank(id TankID) *Tank {
	return ts.Arena.tanks[id]
}

// RunTicks advances the arena n times.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Arena.Advance()
	}
}

// RunUntil advances until predicate returns true or maxTicks is reached and
// returns the number of ticks run.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if predicate(ts) {
			return i
		}
		ts.Arena.Advance()
	}
	return maxTicks
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
