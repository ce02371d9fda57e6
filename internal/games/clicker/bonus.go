package clicker

import (
	"math"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
)

// target is a bonus creature crossing the play field.
type target struct {
	x        float64 // left edge in cells
	y        int
	speed    float64 // cells per second, always positive
	fromLeft bool
	width    int
}

// bounds returns the cells the target occupies.
func (t target) bounds() core.Rect {
	return core.NewRect(int(math.Floor(t.x)), t.y, t.width, 1)
}

// bonusField spawns and moves bonus targets once the bonus stage is
// reached. Spawn timing, side, row and speed come from a seeded source.
type bonusField struct {
	cfg     config.BonusConfig
	rng     *rand.Rand
	timer   float64 // seconds until the next spawn
	targets []target
	spawned int
	caught  int
}

func newBonusField(cfg config.BonusConfig, seed int64) *bonusField {
	b := &bonusField{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	b.timer = b.nextInterval()
	return b
}

func (b *bonusField) nextInterval() float64 {
	return uniform(b.rng, b.cfg.SpawnMin, b.cfg.SpawnMax)
}

// update counts down the spawn timer, moves targets and drops the ones
// that left the area.
func (b *bonusField) update(dt float64, area core.Rect) {
	if area.Empty() {
		return
	}

	b.timer -= dt
	if b.timer <= 0 {
		b.spawn(area)
		b.timer = b.nextInterval()
	}

	kept := b.targets[:0]
	for _, t := range b.targets {
		if t.fromLeft {
			t.x += t.speed * dt
		} else {
			t.x -= t.speed * dt
		}
		if t.fromLeft && t.x >= float64(area.Right()) {
			continue
		}
		if !t.fromLeft && t.x+float64(t.width) <= float64(area.X) {
			continue
		}
		kept = append(kept, t)
	}
	b.targets = kept
}

func (b *bonusField) spawn(area core.Rect) {
	width := utf8.RuneCountInString(b.cfg.Label)
	t := target{
		y:        area.Y + b.rng.Intn(area.H),
		speed:    uniform(b.rng, b.cfg.SpeedMin, b.cfg.SpeedMax),
		fromLeft: b.rng.Float64() > 0.5,
		width:    width,
	}
	if t.fromLeft {
		t.x = float64(area.X - width)
	} else {
		t.x = float64(area.Right())
	}
	b.targets = append(b.targets, t)
	b.spawned++
}

// catchFirst catches the oldest target visible inside area.
func (b *bonusField) catchFirst(area core.Rect) (target, bool) {
	for i, t := range b.targets {
		if t.bounds().Intersects(area) {
			return b.remove(i), true
		}
	}
	return target{}, false
}

// catchAt catches the target under the given cell.
func (b *bonusField) catchAt(pt core.Point) (target, bool) {
	for i, t := range b.targets {
		if t.bounds().ContainsPoint(pt) {
			return b.remove(i), true
		}
	}
	return target{}, false
}

func (b *bonusField) hitAt(pt core.Point) bool {
	for _, t := range b.targets {
		if t.bounds().ContainsPoint(pt) {
			return true
		}
	}
	return false
}

func (b *bonusField) remove(i int) target {
	t := b.targets[i]
	b.targets = append(b.targets[:i], b.targets[i+1:]...)
	b.caught++
	return t
}

// clampTo moves targets stranded outside a shrunken area back inside it.
func (b *bonusField) clampTo(area core.Rect) {
	inner := area.Inset(1)
	if inner.Empty() {
		b.targets = b.targets[:0]
		return
	}
	for i := range b.targets {
		b.targets[i].y = core.Clamp(b.targets[i].y, inner.Y, inner.Bottom()-1)
	}
}

func (b *bonusField) clear() {
	b.targets = b.targets[:0]
	b.timer = b.nextInterval()
}

func (b *bonusField) render(dst *core.Screen, area core.Rect) {
	for _, t := range b.targets {
		x := int(math.Floor(t.x))
		for i, r := range []rune(b.cfg.Label) {
			if area.Contains(x+i, t.y) {
				dst.SetColored(x+i, t.y, r, core.ColorBrightBlue)
			}
		}
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
