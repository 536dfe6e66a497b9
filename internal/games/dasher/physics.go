package dasher

// Player is the jumping sprite. VelY is in px/s, positive is down.
type Player struct {
	Frame
	VelY float64
}

// Grounded reports whether the player stands on (or has sunk below) groundY.
// The gravity clamp, the jump gate and the animation gate all use it.
func (p Player) Grounded(groundY float64) bool {
	return p.Pos.Y >= groundY
}

// ApplyGravity zeroes the velocity and snaps to groundY when grounded,
// otherwise accelerates downward.
func (p *Player) ApplyGravity(groundY, gravity, dt float64) {
	if p.Grounded(groundY) {
		p.VelY = 0
		p.Pos.Y = groundY
		return
	}
	p.VelY += gravity * sanitizeDelta(dt)
}

// ApplyJump adds impulse to the velocity if the player is grounded.
// Returns whether the jump was accepted.
func (p *Player) ApplyJump(groundY, impulse float64) bool {
	if !p.Grounded(groundY) {
		return false
	}
	p.VelY += impulse
	return true
}

// Integrate moves the player by its velocity over dt.
func (p *Player) Integrate(dt float64) {
	p.Pos.Y += p.VelY * sanitizeDelta(dt)
}
