package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// Config tunes a particle system.
type Config struct {
	PerClick    int
	LifetimeMin float64
	LifetimeMax float64
	SpeedMin    float64
	SpeedMax    float64
	SizeMin     int
	SizeMax     int
	Gravity     float64
	TextSpeed   float64
	Max         int // 0 means unlimited
}

// DefaultConfig returns the stock tuning for an 80x24 terminal.
func DefaultConfig() Config {
	return Config{
		PerClick:    5,
		LifetimeMin: 0.5,
		LifetimeMax: 1.5,
		SpeedMin:    5,
		SpeedMax:    15,
		SizeMin:     3,
		SizeMax:     8,
		Gravity:     20,
		TextSpeed:   5,
		Max:         200,
	}
}

// textLifetime is how long a floating label lives.
const textLifetime = 1.0

// System owns the live particles of one game session.
// It is not safe for concurrent use.
type System struct {
	cfg       Config
	rng       *rand.Rand
	particles []Particle
}

// NewSystem creates an empty system whose randomness comes from seed.
func NewSystem(cfg Config, seed int64) *System {
	return &System{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reset removes every particle and reseeds the random source.
func (s *System) Reset(seed int64) {
	s.particles = s.particles[:0]
	s.rng = rand.New(rand.NewSource(seed))
}

// Burst emits the configured number of sparks at (x, y) in random
// directions.
func (s *System) Burst(x, y float64) {
	for i := 0; i < s.cfg.PerClick; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.uniform(s.cfg.SpeedMin, s.cfg.SpeedMax)
		s.add(Particle{
			X:        x,
			Y:        y,
			VX:       speed * math.Cos(angle),
			VY:       speed * math.Sin(angle),
			Color:    core.Palette[s.rng.Intn(len(core.Palette))],
			BaseSize: s.intBetween(s.cfg.SizeMin, s.cfg.SizeMax),
			Lifetime: s.uniform(s.cfg.LifetimeMin, s.cfg.LifetimeMax),
		})
	}
}

// Label emits a floating text particle that rises from (x, y).
func (s *System) Label(x, y float64, text string, c core.Color) {
	s.add(Particle{
		X:        x,
		Y:        y,
		VY:       -s.cfg.TextSpeed,
		Color:    c,
		BaseSize: 1,
		Lifetime: textLifetime,
		Text:     text,
	})
}

// Emit adds a fully specified particle.
func (s *System) Emit(p Particle) {
	s.add(p)
}

func (s *System) add(p Particle) {
	if p.BaseSize < 1 {
		p.BaseSize = 1
	}
	p.Size = p.BaseSize
	if s.cfg.Max > 0 && len(s.particles) >= s.cfg.Max {
		// Drop the oldest to make room.
		copy(s.particles, s.particles[1:])
		s.particles = s.particles[:len(s.particles)-1]
	}
	s.particles = append(s.particles, p)
}

// Update advances every particle by dt seconds and removes the expired
// ones, keeping the survivors in emission order. Non-positive dt is a no-op.
func (s *System) Update(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}

	alive := s.particles[:0]
	for _, p := range s.particles {
		if p.update(dt, s.cfg.Gravity) {
			alive = append(alive, p)
		}
	}
	clear(s.particles[len(alive):])
	s.particles = alive
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// Clear removes every particle without touching the random source.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Render draws the particles that fall inside clip.
func (s *System) Render(dst *core.Screen, clip core.Rect) {
	for i := range s.particles {
		p := &s.particles[i]
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))

		if p.Text != "" {
			for j, r := range []rune(p.Text) {
				if clip.Contains(x+j, y) {
					dst.SetColored(x+j, y, r, p.Color)
				}
			}
			continue
		}
		if clip.Contains(x, y) {
			dst.SetColored(x, y, p.Glyph(), p.Color)
		}
	}
}

func (s *System) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *System) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
