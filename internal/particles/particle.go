// Package particles simulates the short-lived click feedback: sparks that
// burst from the click point, fall under gravity and shrink as they age,
// and floating "+N" labels. All motion is driven by the tick dt so a seeded
// system replays identically.
package particles

import "github.com/vovakirdan/tui-clicker/internal/core"

// Particle is a single spark or floating label. Positions are in screen
// cells and velocities in cells per second.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    core.Color
	BaseSize int     // size at birth
	Size     int     // current size, shrinks with remaining life
	Lifetime float64 // total lifetime in seconds
	Age      float64 // seconds lived so far
	Text     string  // non-empty for floating labels
}

// Remaining returns the fraction of lifetime left, in [0, 1].
func (p *Particle) Remaining() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return core.ClampF(1-p.Age/p.Lifetime, 0, 1)
}

// Alive reports whether the particle still has lifetime left.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// update advances the particle by dt seconds and reports whether it is
// still alive.
func (p *Particle) update(dt, gravity float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += gravity * dt
	p.Age += dt

	if !p.Alive() {
		return false
	}

	p.Size = max(1, int(float64(p.BaseSize)*p.Remaining()))
	return true
}

// Glyph returns the rune used to draw a spark of the current size.
func (p *Particle) Glyph() rune {
	switch {
	case p.Size >= 6:
		return '●'
	case p.Size >= 3:
		return '•'
	default:
		return '·'
	}
}
