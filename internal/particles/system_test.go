package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

func TestBurstEmitsConfiguredCount(t *testing.T) {
	s := NewSystem(DefaultConfig(), 1)
	s.Burst(10, 5)

	require.Equal(t, 5, s.Len())
	for _, p := range s.Particles() {
		assert.Equal(t, 10.0, p.X)
		assert.Equal(t, 5.0, p.Y)
		assert.GreaterOrEqual(t, p.BaseSize, 3)
		assert.LessOrEqual(t, p.BaseSize, 8)
		assert.GreaterOrEqual(t, p.Lifetime, 0.5)
		assert.LessOrEqual(t, p.Lifetime, 1.5)
		assert.Equal(t, p.BaseSize, p.Size)
	}
}

func TestUpdateExpiresParticles(t *testing.T) {
	s := NewSystem(DefaultConfig(), 1)
	s.Burst(0, 0)
	s.Label(0, 0, "+1", core.ColorGreen)

	s.Update(0.4)
	assert.Equal(t, 6, s.Len(), "nothing expires before the minimum lifetime")

	s.Update(1.2)
	assert.Equal(t, 0, s.Len(), "everything expires after the maximum lifetime")
}

func TestUpdateShrinksAndFalls(t *testing.T) {
	s := NewSystem(Config{Gravity: 10}, 1)
	s.Emit(Particle{X: 5, Y: 5, VY: 0, BaseSize: 8, Lifetime: 1})

	s.Update(0.5)
	p := s.Particles()[0]

	assert.Equal(t, 4, p.Size, "half the life left keeps half the size")
	assert.InDelta(t, 5.0, p.VY, 1e-9, "gravity accelerates downward")
	assert.InDelta(t, 0.5, p.Remaining(), 1e-9)

	s.Update(0.45)
	p = s.Particles()[0]
	assert.Equal(t, 1, p.Size, "size never drops below one while alive")
}

func TestUpdateIgnoresBadDt(t *testing.T) {
	s := NewSystem(DefaultConfig(), 1)
	s.Burst(0, 0)
	before := s.Particles()

	s.Update(0)
	s.Update(-1)
	assert.Equal(t, before, s.Particles())
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []Particle {
		s := NewSystem(DefaultConfig(), 42)
		for i := 0; i < 4; i++ {
			s.Burst(float64(i), 3)
			s.Update(0.1)
		}
		return s.Particles()
	}

	assert.Equal(t, run(), run())
}

func TestMaxDropsOldest(t *testing.T) {
	s := NewSystem(Config{Max: 3}, 1)
	for i := 0; i < 5; i++ {
		s.Emit(Particle{X: float64(i), Lifetime: 1})
	}

	ps := s.Particles()
	require.Len(t, ps, 3)
	assert.Equal(t, 2.0, ps[0].X)
	assert.Equal(t, 4.0, ps[2].X)
}

func TestRenderClips(t *testing.T) {
	s := NewSystem(Config{}, 1)
	s.Emit(Particle{X: 2, Y: 1, BaseSize: 8, Lifetime: 1, Color: core.ColorRed})
	s.Emit(Particle{X: 9, Y: 1, BaseSize: 8, Lifetime: 1})
	s.Emit(Particle{X: 3, Y: 2, Lifetime: 1, Text: "+15", Color: core.ColorGreen})

	screen := core.NewScreen(10, 4)
	s.Render(screen, core.NewRect(0, 0, 5, 4))

	assert.Equal(t, core.Cell{Rune: '●', Color: core.ColorRed}, screen.GetCell(2, 1))
	assert.Equal(t, ' ', screen.Get(9, 1), "outside the clip rect")
	assert.Equal(t, "+1", screen.Row(2)[3:5], "labels are clipped per rune")
	assert.Equal(t, ' ', screen.Get(5, 2))
}

func TestResetReseeds(t *testing.T) {
	s := NewSystem(DefaultConfig(), 7)
	s.Burst(0, 0)
	first := s.Particles()

	s.Reset(7)
	assert.Equal(t, 0, s.Len())
	s.Burst(0, 0)
	assert.Equal(t, first, s.Particles())
}
