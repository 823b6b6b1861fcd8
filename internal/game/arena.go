package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// MatchState is the coarse lifecycle of a match.
type MatchState int

const (
	StateMenu MatchState = iota
	StatePlaying
	StateGameOver
)

func (s MatchState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Arena owns every entity for the lifetime of a session. All mutation
// happens inside Advance and the lifecycle calls, on a single goroutine.
type Arena struct {
	cfg     Config
	mode    InputMode
	players int
	state   MatchState
	tick    int
	matchID string

	tanks    [2]*Tank
	bullets  []*Bullet
	powerUps []*PowerUp

	layouts        []Layout
	customBarriers []Barrier
	layoutIndex    int
	barriers       []Barrier
	navGrid        *NavGrid

	lastPowerUpSpawn int
	winner           TankID

	rng     *rand.Rand
	log     *SimLog
	thought *ThoughtLog
	stats   *MatchStats
}

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optInfra  optionKind = iota // size, seed, logging, input mode
	optLayout                   // barrier layouts, applied after size is known
)

// Option is a builder function applied to an Arena during construction.
type Option struct {
	kind optionKind
	fn   func(*Arena)
}

// WithArenaSize sets the viewport dimensions.
func WithArenaSize(w, h float64) Option {
	return Option{optInfra, func(a *Arena) {
		a.cfg = NewConfig(w, h)
	}}
}

// WithSeed sets the RNG seed for reproducible runs.
func WithSeed(seed int64) Option {
	return Option{optInfra, func(a *Arena) {
		a.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}}
}

// WithVerboseLog records per-tick positions in the SimLog.
func WithVerboseLog(v bool) Option {
	return Option{optInfra, func(a *Arena) {
		a.log = NewSimLog(v)
	}}
}

// WithInputMode picks keyboard or touch control for human tanks.
func WithInputMode(m InputMode) Option {
	return Option{optInfra, func(a *Arena) {
		a.mode = m
	}}
}

// WithLayouts replaces the built-in layout cycle.
func WithLayouts(layouts ...Layout) Option {
	return Option{optLayout, func(a *Arena) {
		a.layouts = layouts
	}}
}

// WithBarrier adds a fixed barrier. All WithBarrier options together form a
// single layout that replaces the built-in cycle.
func WithBarrier(x, y, w, h float64) Option {
	return Option{optLayout, func(a *Arena) {
		a.customBarriers = append(a.customBarriers, Barrier{X: x, Y: y, W: w, H: h})
	}}
}

// WithNoBarriers runs the arena on a single empty layout.
func WithNoBarriers() Option {
	return WithLayouts(fixedLayout(nil))
}

// NewArena builds an arena in the menu state. Options are applied in passes:
// infrastructure first, then layouts, then barriers and the nav grid.
func NewArena(opts ...Option) *Arena {
	a := &Arena{
		cfg:     NewConfig(1280, 720),
		layouts: defaultLayouts,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- gameplay only
		log:     NewSimLog(false),
		thought: NewThoughtLog(),
		winner:  NoTank,
	}
	for _, o := range opts {
		if o.kind == optInfra {
			o.fn(a)
		}
	}
	for _, o := range opts {
		if o.kind == optLayout {
			o.fn(a)
		}
	}
	if len(a.customBarriers) > 0 {
		a.layouts = []Layout{fixedLayout(a.customBarriers)}
	}
	if len(a.layouts) == 0 {
		a.layouts = []Layout{fixedLayout(nil)}
	}

	a.tanks[0] = newTank(0, "P1")
	a.tanks[1] = newTank(1, "P2")
	a.stats = NewMatchStats()
	a.rebuildLayout()
	a.placeTanks()
	return a
}

// InitMatch starts a fresh match: scores, layout cycle and every entity are
// reset to round zero. players is 1 (vs computer), 2 (local) or 0 (both
// tanks computer-controlled).
func (a *Arena) InitMatch(players int) {
	a.players = players
	a.tanks[0].AIControlled = players == 0
	a.tanks[1].AIControlled = players <= 1
	for _, t := range a.tanks {
		t.Score = 0
		t.Recoil = 0
		t.lastShot = 0
		t.hasFired = false
		t.input = Input{}
	}
	a.matchID = uuid.NewString()
	a.log = NewSimLog(a.log.verbose)
	a.stats = NewMatchStats()
	a.layoutIndex = 0
	a.rebuildLayout()
	a.ResetRound()
	a.winner = NoTank
	a.state = StatePlaying
	a.log.Add(a.tick, "--", "match", "start", fmt.Sprintf("%s players=%d", a.matchID, players), float64(players))
}

// ShowMenu abandons any match in progress and returns to the menu. Scores
// and the winner stay readable until the next InitMatch.
func (a *Arena) ShowMenu() {
	if a.state == StatePlaying {
		a.log.Add(a.tick, "--", "match", "abandon", fmt.Sprintf("%d-%d", a.tanks[0].Score, a.tanks[1].Score), 0)
	}
	a.state = StateMenu
	a.bullets = nil
	a.powerUps = nil
}

// ResetRound re-centres both tanks and clears bullets and pickups without
// touching scores.
func (a *Arena) ResetRound() {
	a.placeTanks()
	a.bullets = nil
	a.powerUps = nil
	a.lastPowerUpSpawn = a.tick
}

func (a *Arena) placeTanks() {
	p1, p2 := a.tanks[0], a.tanks[1]
	p1.X, p1.Y, p1.Angle = a.cfg.Width*0.15, a.cfg.Height/2, 0
	p2.X, p2.Y, p2.Angle = a.cfg.Width*0.85, a.cfg.Height/2, math.Pi
	for _, t := range a.tanks {
		t.VX, t.VY = 0, 0
		t.clearPowerUps()
		t.AI.reset()
	}
}

// Resize rebuilds config, barriers and nav grid for a new viewport.
func (a *Arena) Resize(w, h float64) {
	if w == a.cfg.Width && h == a.cfg.Height {
		return
	}
	a.cfg = NewConfig(w, h)
	a.rebuildLayout()
	for _, t := range a.tanks {
		a.clampTank(t)
	}
}

// rebuildLayout replaces barriers and nav grid for the current layout index.
func (a *Arena) rebuildLayout() {
	a.barriers = a.layouts[a.layoutIndex%len(a.layouts)](a.cfg.Width, a.cfg.Height)
	a.navGrid = NewNavGrid(a.cfg.Width, a.cfg.Height, a.barriers, a.cfg.TankWidth)
}

// nextLayout advances the layout cycle.
func (a *Arena) nextLayout() {
	a.layoutIndex = (a.layoutIndex + 1) % len(a.layouts)
	a.rebuildLayout()
	a.log.Add(a.tick, "--", "match", "layout", fmt.Sprintf("layout %d", a.layoutIndex), float64(a.layoutIndex))
}

// SetInput stores the intents a tank acts on during the next Advance.
func (a *Arena) SetInput(id TankID, in Input) {
	if id < 0 || int(id) >= len(a.tanks) {
		return
	}
	a.tanks[id].input = in
}

// Advance runs one simulation tick.
func (a *Arena) Advance() {
	if a.state != StatePlaying {
		return
	}
	a.tick++

	a.spawnPowerUp()
	a.expirePowerUps()
	for i, t := range a.tanks {
		if t.AIControlled {
			a.updateAI(t, a.tanks[1-i])
		} else {
			a.updateTank(t)
		}
	}
	a.updateBullets()
	if a.state != StatePlaying {
		return
	}
	a.separateTanks()
	a.collectPowerUps()

	for _, t := range a.tanks {
		a.log.AddVerbose(a.tick, t.Label, "move", "position", fmt.Sprintf("(%.1f,%.1f)", t.X, t.Y), 0)
	}
}

// --- Read accessors for the front-end ---

// Config returns the current viewport-derived configuration.
func (a *Arena) Config() Config { return a.cfg }

// Tanks returns both tanks, P1 first.
func (a *Arena) Tanks() [2]*Tank { return a.tanks }

// Bullets returns live bullets in processing order.
func (a *Arena) Bullets() []*Bullet { return a.bullets }

// Barriers returns the active layout's barriers.
func (a *Arena) Barriers() []Barrier { return a.barriers }

// PowerUps returns pickups currently on the floor.
func (a *Arena) PowerUps() []*PowerUp { return a.powerUps }

// NavGrid returns the grid for the active layout.
func (a *Arena) NavGrid() *NavGrid { return a.navGrid }

// State returns the match state.
func (a *Arena) State() MatchState { return a.state }

// Winner returns the winning tank, or nil while no one has won.
func (a *Arena) Winner() *Tank {
	if a.winner == NoTank {
		return nil
	}
	return a.tanks[a.winner]
}

// Tick returns the number of ticks simulated so far.
func (a *Arena) Tick() int { return a.tick }

// Players returns the player count passed to InitMatch.
func (a *Arena) Players() int { return a.players }

// InputMode returns the session's input mode.
func (a *Arena) InputMode() InputMode { return a.mode }

// MatchID identifies the current match in logs and reports.
func (a *Arena) MatchID() string { return a.matchID }

// Log returns the structured event log.
func (a *Arena) Log() *SimLog { return a.log }

// Thoughts returns the AI thought ring buffer.
func (a *Arena) Thoughts() *ThoughtLog { return a.thought }

// Stats returns per-tank counters for the current match.
func (a *Arena) Stats() *MatchStats { return a.stats }

// LayoutIndex returns the active position in the layout cycle.
func (a *Arena) LayoutIndex() int { return a.layoutIndex }
