package game

import "github.com/vovakirdan/geodash/internal/core"

// Player is the controllable box.
type Player struct {
	Box      core.Rect // Collision box, top-left origin
	Velocity int       // Vertical velocity in world units per tick, negative = up
	OnGround bool      // Whether the bottom edge rests on the ground line
}

// newPlayer places the player at its configured starting box. With
// startOnGround the player may jump before first touching the ground.
func newPlayer(x, y, w, h, groundY int, startOnGround bool) Player {
	box := core.NewRect(x, y, w, h)
	return Player{
		Box:      box,
		Velocity: 0,
		OnGround: startOnGround || box.Bottom() == groundY,
	}
}

// jump applies the impulse when grounded. Returns whether it took effect.
func (p *Player) jump(impulse int) bool {
	if !p.OnGround {
		return false
	}
	p.Velocity = impulse
	p.OnGround = false
	return true
}

// integrate advances vertical motion by one tick.
func (p *Player) integrate(gravity int) {
	p.Box.Y += p.Velocity
	p.Velocity += gravity
}

// clampToGround snaps the box onto the ground line once it reaches it.
func (p *Player) clampToGround(groundY int) {
	if p.Box.Bottom() >= groundY {
		p.Box.Y = groundY - p.Box.H
		p.OnGround = true
		p.Velocity = 0
	}
}
