package clicker

import "math"

// Snapshot is a value copy of the engine state, used to compare runs in
// determinism tests.
type Snapshot struct {
	Tick           uint64
	Currency       string
	ClickPower     string
	AutoClickPower string
	Stage          int
	Levels         map[string]int
	Clicks         int64
	Elapsed        float64
	Won            bool
	Paused         bool
	Cursor         int

	// Each particle is 4 values: X, Y, Size, Age.
	ParticleCount int
	ParticleData  []float64

	// Each bonus target is 2 values: X, Y.
	BonusCount   int
	BonusData    []float64
	BonusSpawned int
	BonusCaught  int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	ps := g.particles.Particles()
	particleData := make([]float64, 0, len(ps)*4)
	for _, p := range ps {
		particleData = append(particleData, p.X, p.Y, float64(p.Size), p.Age)
	}

	bonusData := make([]float64, 0, len(g.bonus.targets)*2)
	for _, t := range g.bonus.targets {
		bonusData = append(bonusData, t.x, float64(t.y))
	}

	return Snapshot{
		Tick:           g.tick,
		Currency:       g.player.Currency().String(),
		ClickPower:     g.player.ClickPower().String(),
		AutoClickPower: g.player.AutoClickPower().String(),
		Stage:          g.player.Stage(),
		Levels:         g.player.Levels(),
		Clicks:         g.stats.Clicks,
		Elapsed:        g.stats.Elapsed,
		Won:            g.stats.Won,
		Paused:         g.paused,
		Cursor:         g.cursor,

		ParticleCount: len(ps),
		ParticleData:  particleData,

		BonusCount:   len(g.bonus.targets),
		BonusData:    bonusData,
		BonusSpawned: g.bonus.spawned,
		BonusCaught:  g.bonus.caught,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, s := range []string{snap.Currency, snap.ClickPower, snap.AutoClickPower} {
		for _, b := range []byte(s) {
			h = h*31 + uint64(b)
		}
	}
	h = h*31 + uint64(snap.Stage)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Clicks)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cursor)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusSpawned) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusCaught)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Elapsed)
	if snap.Won {
		h = h*31 + 1
	}

	for _, v := range snap.ParticleData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BonusData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
