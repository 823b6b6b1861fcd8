package game

import (
	"math"
	"time"
)

const (
	tankSpeed     = 2.0  // pixels per tick
	tankTurnSpeed = 0.04 // radians per tick
	bulletSpeed   = 6.0  // pixels per tick
	bulletSize    = 5.0  // bullet radius, also the LOS sample step
	winningScore  = 3
	navCellSize   = 30 // pixels per nav-grid cell edge
	trailLength   = 10
	recoilKick    = 10
	maxPowerUps   = 2

	backwardSpeedMul = 0.7
	joystickDeadzone = 0.2 // fraction of joystick radius

	ticksPerSecond = 60
)

// Timed rules. Converted to ticks once in NewConfig.
const (
	fireCooldown         = 600 * time.Millisecond
	powerUpSpawnInterval = 10 * time.Second
	powerUpLifespan      = 8 * time.Second
	powerUpEffectTime    = 10 * time.Second
)

// AI timers run on a fixed nominal step regardless of the real frame time.
const (
	aiNominalStep       = 16 * time.Millisecond
	aiDecisionMin       = 1000 * time.Millisecond
	aiDecisionJitter    = 500 * time.Millisecond
	aiEvasionTicks      = 15
	aiThreatRadiusFrac  = 0.4  // of arena width
	aiThreatAngle       = 0.5  // radians
	aiAimTolerance      = 0.2  // radians
	aiEvadeAimTolerance = 0.15 // radians
	aiEngageRangeFrac   = 0.3  // of arena width
	aiWaypointReach     = 1.5  // nav cells
	aiCoverPaddingFrac  = 0.8  // of tank width
)

// Config holds every size and timer that depends on the viewport. It is
// rebuilt wholesale on resize.
type Config struct {
	Width  float64
	Height float64

	TankWidth      float64
	TankHeight     float64
	TurretLength   float64
	JoystickRadius float64
	PowerUpRadius  float64

	FireCooldownTicks  float64
	SpawnIntervalTicks int
	PowerUpLifeTicks   int
	EffectTicks        int
}

// NewConfig derives arena-relative sizes from the viewport dimensions.
func NewConfig(w, h float64) Config {
	short := math.Min(w, h)
	tw := short * 0.05
	th := tw * 1.2
	return Config{
		Width:              w,
		Height:             h,
		TankWidth:          tw,
		TankHeight:         th,
		TurretLength:       th * 0.8,
		JoystickRadius:     short * 0.1,
		PowerUpRadius:      short * 0.02,
		FireCooldownTicks:  float64(durationToTicks(fireCooldown)),
		SpawnIntervalTicks: durationToTicks(powerUpSpawnInterval),
		PowerUpLifeTicks:   durationToTicks(powerUpLifespan),
		EffectTicks:        durationToTicks(powerUpEffectTime),
	}
}

// durationToTicks rounds a duration to the nearest whole tick.
func durationToTicks(d time.Duration) int {
	return int(math.Round(d.Seconds() * ticksPerSecond))
}
