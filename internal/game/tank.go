package game

import "time"

// TankID is a stable handle for a tank: its index in the arena's tank list.
// Bullets record ownership by ID, never by pointer.
type TankID int

// NoTank marks an absent owner or winner.
const NoTank TankID = -1

// InputMode selects how human tanks read their intents. Exactly one mode is
// active per session.
type InputMode int

const (
	InputKeyboard InputMode = iota
	InputTouch
)

// Input is the intent state set by the front-end before each Advance.
// Keyboard mode reads Up/Down/Left/Right/Fire; touch mode reads the
// joystick vector and FireButton.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool

	JoystickActive bool
	JoyX, JoyY     float64 // knob offset from the joystick base, pixels
	FireButton     bool
}

// Tank is one of the two combatants.
type Tank struct {
	ID    TankID
	Label string // "P1", "P2"

	X, Y  float64
	Angle float64
	VX    float64 // last-tick position delta
	VY    float64

	Score    int
	Recoil   int
	lastShot int
	hasFired bool

	Effect           PowerUpKind // timed effect, PowerUpNone when idle
	EffectEnds       int
	Shield           bool
	NextShotPiercing bool

	AIControlled bool
	AI           AIState

	input Input
}

func newTank(id TankID, label string) *Tank {
	return &Tank{ID: id, Label: label}
}

// AIState is the decision memory of a computer-controlled tank.
type AIState struct {
	decisionTimer time.Duration
	Target        [2]float64
	TargetKind    aiTargetKind
	Evasion       evasionState
	Path          [][2]float64
	PathIndex     int
}

type evasionState struct {
	Active bool
	Angle  float64
	Timer  int
}

func (s *AIState) reset() {
	*s = AIState{}
}

// clearPowerUps drops every held effect.
func (t *Tank) clearPowerUps() {
	t.Effect = PowerUpNone
	t.EffectEnds = 0
	t.Shield = false
	t.NextShotPiercing = false
}

// tickTimers decays recoil and expires a timed effect.
func (t *Tank) tickTimers(now int) {
	if t.Recoil > 0 {
		t.Recoil--
	}
	if t.Effect != PowerUpNone && now > t.EffectEnds {
		t.Effect = PowerUpNone
	}
}

// Speed returns the current forward speed in pixels per tick.
func (t *Tank) Speed() float64 {
	return tankSpeed * t.Effect.effect().speedMul
}

// cooldownTicks returns the current minimum gap between shots.
func (t *Tank) cooldownTicks(cfg Config) float64 {
	return cfg.FireCooldownTicks * t.Effect.effect().cooldownMul
}

// canFire is always true before the first shot of a match.
func (t *Tank) canFire(now int, cfg Config) bool {
	return !t.hasFired || float64(now-t.lastShot) > t.cooldownTicks(cfg)
}
