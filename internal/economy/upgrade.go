package economy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidUpgrade is wrapped by every NewUpgrade validation failure.
var ErrInvalidUpgrade = errors.New("invalid upgrade")

// Kind selects the effect an upgrade has on a player.
type Kind int

const (
	KindUnknown Kind = iota
	// KindClickPower adds EffectValue to click power on every purchase.
	KindClickPower
	// KindAutoClicker adds EffectValue to passive income on every purchase.
	KindAutoClicker
	// KindClickMultiplier multiplies click power by EffectValue on the
	// first purchase only. Later levels cost currency but change nothing.
	KindClickMultiplier
	// KindStageUnlock raises the player's stage to EffectValue.
	KindStageUnlock
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindClickPower:
		return "click_power"
	case KindAutoClicker:
		return "auto_clicker"
	case KindClickMultiplier:
		return "click_multiplier"
	case KindStageUnlock:
		return "stage_unlock"
	default:
		return "unknown"
	}
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "click_power":
		return KindClickPower, nil
	case "auto_clicker":
		return KindAutoClicker, nil
	case "click_multiplier":
		return KindClickMultiplier, nil
	case "stage_unlock":
		return KindStageUnlock, nil
	default:
		return KindUnknown, fmt.Errorf("economy: unknown upgrade kind %q", s)
	}
}

// KindForID infers the kind of the stock upgrades from their id, for
// definitions written before kinds were explicit.
func KindForID(id string) (Kind, bool) {
	switch id {
	case "click_power":
		return KindClickPower, true
	case "auto_clicker":
		return KindAutoClicker, true
	case "click_multiplier":
		return KindClickMultiplier, true
	case "stage_2_unlock":
		return KindStageUnlock, true
	}
	return KindUnknown, false
}

// Definition holds the raw fields of an upgrade before validation.
type Definition struct {
	ID             string
	Name           string
	Description    string
	Category       string
	Kind           Kind
	BaseCost       decimal.Decimal
	CostMultiplier decimal.Decimal
	EffectValue    decimal.Decimal
	MaxLevel       int // 0 means unlimited
}

// Upgrade is an immutable purchasable upgrade.
type Upgrade struct {
	id             string
	name           string
	description    string
	category       string
	kind           Kind
	baseCost       decimal.Decimal
	costMultiplier decimal.Decimal
	effectValue    decimal.Decimal
	maxLevel       int
}

// NewUpgrade validates def and builds an Upgrade from it.
func NewUpgrade(def Definition) (*Upgrade, error) {
	invalid := func(reason string) error {
		return fmt.Errorf("economy: upgrade %q: %s: %w", def.ID, reason, ErrInvalidUpgrade)
	}

	if strings.TrimSpace(def.ID) == "" {
		return nil, invalid("id is empty")
	}
	switch def.Kind {
	case KindClickPower, KindAutoClicker, KindClickMultiplier, KindStageUnlock:
	default:
		return nil, invalid("unknown kind")
	}
	if !def.BaseCost.IsPositive() {
		return nil, invalid("base cost must be positive")
	}
	if def.CostMultiplier.LessThan(decimal.NewFromInt(1)) {
		return nil, invalid("cost multiplier must be at least 1")
	}
	if !def.EffectValue.IsPositive() {
		return nil, invalid("effect value must be positive")
	}
	// Click power, passive income and stages stay whole numbers, so the
	// balance never turns fractional.
	if !def.EffectValue.IsInteger() {
		return nil, invalid("effect value must be a whole number")
	}
	if def.Kind == KindClickMultiplier && def.EffectValue.LessThan(decimal.NewFromInt(1)) {
		return nil, invalid("click multiplier must be at least 1")
	}
	if def.MaxLevel < 0 {
		return nil, invalid("max level must not be negative")
	}

	name := def.Name
	if name == "" {
		name = def.ID
	}

	return &Upgrade{
		id:             def.ID,
		name:           name,
		description:    def.Description,
		category:       def.Category,
		kind:           def.Kind,
		baseCost:       def.BaseCost,
		costMultiplier: def.CostMultiplier,
		effectValue:    def.EffectValue,
		maxLevel:       def.MaxLevel,
	}, nil
}

// MustUpgrade is NewUpgrade that panics on an invalid definition.
func MustUpgrade(def Definition) *Upgrade {
	u, err := NewUpgrade(def)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *Upgrade) ID() string                      { return u.id }
func (u *Upgrade) Name() string                    { return u.name }
func (u *Upgrade) Description() string             { return u.description }
func (u *Upgrade) Category() string                { return u.category }
func (u *Upgrade) Kind() Kind                      { return u.kind }
func (u *Upgrade) BaseCost() decimal.Decimal       { return u.baseCost }
func (u *Upgrade) CostMultiplier() decimal.Decimal { return u.costMultiplier }
func (u *Upgrade) EffectValue() decimal.Decimal    { return u.effectValue }

// MaxLevel returns the level cap, or 0 when the upgrade is unlimited.
func (u *Upgrade) MaxLevel() int { return u.maxLevel }

// Cost returns the price of buying the upgrade when the buyer already owns
// level levels: floor(base * multiplier^level). Level 0 is the price of the
// first purchase.
func (u *Upgrade) Cost(level int) decimal.Decimal {
	if level < 0 {
		level = 0
	}
	growth := u.costMultiplier.Pow(decimal.NewFromInt(int64(level)))
	return u.baseCost.Mul(growth).Floor()
}

// NextCost is the price of the player's next level of this upgrade.
func (u *Upgrade) NextCost(p *Player) decimal.Decimal {
	return u.Cost(p.Level(u.id))
}

// Apply changes the player's stats for a purchase that has just raised the
// upgrade's level.
func (u *Upgrade) Apply(p *Player) {
	switch u.kind {
	case KindClickPower:
		p.clickPower = p.clickPower.Add(u.effectValue)
	case KindAutoClicker:
		p.autoClickPower = p.autoClickPower.Add(u.effectValue)
	case KindClickMultiplier:
		if p.Level(u.id) == 1 {
			p.clickPower = p.clickPower.Mul(u.effectValue)
		}
	case KindStageUnlock:
		if stage := int(u.effectValue.IntPart()); stage > p.stage {
			p.stage = stage
		}
	}
}

// Available reports whether the player can still raise this upgrade's level.
func (u *Upgrade) Available(p *Player) bool {
	if u.maxLevel > 0 && p.Level(u.id) >= u.maxLevel {
		return false
	}
	return true
}

// NextLevelDescription describes what buying the next level does.
func (u *Upgrade) NextLevelDescription(p *Player, currencyName string) string {
	if !u.Available(p) {
		return "Maximum level reached"
	}

	value := Format(u.effectValue, true)
	switch u.kind {
	case KindClickPower:
		return fmt.Sprintf("Increases click power by %s", value)
	case KindAutoClicker:
		return fmt.Sprintf("Generates %s %s per second", value, currencyName)
	case KindClickMultiplier:
		if p.Level(u.id) == 0 {
			return fmt.Sprintf("Multiplies click power by %s", value)
		}
		return "Already at maximum effectiveness"
	case KindStageUnlock:
		return fmt.Sprintf("Unlocks stage %s", value)
	}
	return "Unknown effect"
}
