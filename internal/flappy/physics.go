package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PlayerState is the single player entity of a session.
type PlayerState struct {
	X, Y      float64
	VelocityY float64 // positive is up
	Radius    float64
	Gravity   float64
	Tilt      float64 // radians, cosmetic only
	Alive     bool
}

// NewPlayer places a fresh player for the given character.
func NewPlayer(cfg config.FlappyConfig, ch Character) PlayerState {
	return PlayerState{
		X:       cfg.World.PlayerX,
		Y:       0,
		Radius:  ch.Radius(),
		Gravity: cfg.Physics.Gravity,
		Alive:   true,
	}
}

// Bounds returns the player's axis-aligned hitbox.
func (p PlayerState) Bounds() core.Box {
	return core.BoxAroundCircle(p.X, p.Y, p.Radius)
}

// Integrate advances the player by dt seconds with semi-implicit Euler:
// velocity first, then position from the updated velocity.
// There is no terminal velocity.
func Integrate(p *PlayerState, dt float64, phys config.PhysicsConfig) {
	p.VelocityY -= p.Gravity * dt
	p.Y += p.VelocityY * dt
	p.Tilt = core.ClampF(p.VelocityY/phys.TiltDivisor, -1, 1) * phys.TiltMax
}

// Flap sets the vertical velocity to jumpForce and queues the jump sound.
func Flap(p *PlayerState, jumpForce float64, events *EventQueue) {
	p.VelocityY = jumpForce
	events.Push(SoundJump)
}
