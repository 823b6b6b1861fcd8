package game

import "math"

// updateTank advances a human-controlled tank by one tick.
func (a *Arena) updateTank(t *Tank) {
	t.tickTimers(a.tick)
	prevX, prevY := t.X, t.Y

	if a.mode == InputTouch {
		a.driveJoystick(t)
	} else {
		a.driveKeys(t)
	}

	a.clampTank(t)
	t.VX, t.VY = t.X-prevX, t.Y-prevY

	firing := t.input.Fire
	if a.mode == InputTouch {
		firing = t.input.FireButton
	}
	if firing && t.canFire(a.tick, a.cfg) {
		a.fire(t)
	}
}

// driveKeys applies keyboard intents: fixed turn impulses, full speed
// forward, reduced speed in reverse.
func (a *Arena) driveKeys(t *Tank) {
	in := t.input
	if in.Left {
		t.Angle -= tankTurnSpeed
	}
	if in.Right {
		t.Angle += tankTurnSpeed
	}

	speed := 0.0
	switch {
	case in.Up:
		speed = t.Speed()
	case in.Down:
		speed = -t.Speed() * backwardSpeedMul
	}
	if speed != 0 {
		a.moveTank(t, t.Angle, speed)
	}
}

// driveJoystick turns toward the stick direction and drives with the part
// of the stick vector that lies along the new heading.
func (a *Arena) driveJoystick(t *Tank) {
	in := t.input
	if !in.JoystickActive {
		return
	}
	dist := math.Hypot(in.JoyX, in.JoyY)
	if dist <= a.cfg.JoystickRadius*joystickDeadzone {
		return
	}

	t.Angle, _ = turnToward(t.Angle, math.Atan2(in.JoyY, in.JoyX), tankTurnSpeed)

	ratio := math.Min(1, dist/a.cfg.JoystickRadius)
	forward := math.Cos(t.Angle)*in.JoyX + math.Sin(t.Angle)*in.JoyY
	a.moveTank(t, t.Angle, forward/dist*t.Speed()*ratio)
}

// moveTank moves along angle one axis at a time, undoing an axis that would
// put the tank inside a barrier. Sliding along walls falls out of this.
func (a *Arena) moveTank(t *Tank, angle, speed float64) {
	oldX := t.X
	t.X += math.Cos(angle) * speed
	if a.tankHitsBarrier(t) {
		t.X = oldX
	}
	oldY := t.Y
	t.Y += math.Sin(angle) * speed
	if a.tankHitsBarrier(t) {
		t.Y = oldY
	}
}

// tankHitsBarrier treats the tank as a square with side = tank width.
func (a *Arena) tankHitsBarrier(t *Tank) bool {
	for _, b := range a.barriers {
		if rectOverlaps(t.X, t.Y, a.cfg.TankWidth, a.cfg.TankWidth, b) {
			return true
		}
	}
	return false
}

// clampTank keeps the tank's footprint inside the arena.
func (a *Arena) clampTank(t *Tank) {
	t.X = clamp(t.X, a.cfg.TankWidth/2, a.cfg.Width-a.cfg.TankWidth/2)
	t.Y = clamp(t.Y, a.cfg.TankHeight/2, a.cfg.Height-a.cfg.TankHeight/2)
}

// separateTanks pushes overlapping tanks apart symmetrically along the line
// between their centres.
func (a *Arena) separateTanks() {
	p1, p2 := a.tanks[0], a.tanks[1]
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	dist := math.Hypot(dx, dy)
	if dist >= a.cfg.TankWidth {
		return
	}
	overlap := (a.cfg.TankWidth - dist) / 2
	angle := math.Atan2(dy, dx)
	p1.X += math.Cos(angle) * overlap
	p1.Y += math.Sin(angle) * overlap
	p2.X -= math.Cos(angle) * overlap
	p2.Y -= math.Sin(angle) * overlap
	a.clampTank(p1)
	a.clampTank(p2)
}
