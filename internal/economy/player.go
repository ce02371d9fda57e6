package economy

import (
	"encoding/json"
	"errors"
	"maps"
	"math"

	"github.com/shopspring/decimal"
)

// Purchase failures reported by CheckPurchase.
var (
	ErrUnknownUpgrade    = errors.New("economy: unknown upgrade")
	ErrMaxLevel          = errors.New("economy: upgrade is at its maximum level")
	ErrInsufficientFunds = errors.New("economy: insufficient funds")
)

var one = decimal.NewFromInt(1)

// Player is the progression state of a single game session.
// It is not safe for concurrent use.
type Player struct {
	currency       decimal.Decimal
	clickPower     decimal.Decimal
	autoClickPower decimal.Decimal
	stage          int
	owned          map[string]int
}

// NewPlayer returns a player with no currency, click power 1, no passive
// income and no upgrades.
func NewPlayer() *Player {
	return &Player{
		currency:       decimal.Zero,
		clickPower:     one,
		autoClickPower: decimal.Zero,
		stage:          1,
		owned:          make(map[string]int),
	}
}

func (p *Player) Currency() decimal.Decimal       { return p.currency }
func (p *Player) ClickPower() decimal.Decimal     { return p.clickPower }
func (p *Player) AutoClickPower() decimal.Decimal { return p.autoClickPower }
func (p *Player) Stage() int                      { return p.stage }

// Click adds one manual click worth of currency and returns the amount.
func (p *Player) Click() decimal.Decimal {
	gained := p.clickPower
	p.currency = p.currency.Add(gained)
	return gained
}

// AutoClick credits passive income for dt seconds and returns the amount.
//
// The income is floor(rate * dt), raised to 1 whenever the rate is positive
// and the product floors to 0. Many small steps therefore earn more than one
// large step covering the same time. dt values that are negative, NaN or
// infinite count as 0.
func (p *Player) AutoClick(dt float64) decimal.Decimal {
	if p.autoClickPower.Sign() <= 0 {
		return decimal.Zero
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	gained := p.autoClickPower.Mul(decimal.NewFromFloat(dt)).Floor()
	if gained.IsZero() {
		gained = one
	}

	p.currency = p.currency.Add(gained)
	return gained
}

// Grant adds a one-off amount of currency, such as a caught bonus target.
// Non-positive amounts are ignored.
func (p *Player) Grant(amount decimal.Decimal) {
	if amount.Sign() <= 0 {
		return
	}
	p.currency = p.currency.Add(amount.Floor())
}

// CanAfford reports whether the player can pay for the next level of u.
func (p *Player) CanAfford(u *Upgrade) bool {
	return p.CanAffordCost(u.NextCost(p))
}

// CanAffordLevel reports whether the player can pay for u at an explicit level.
func (p *Player) CanAffordLevel(u *Upgrade, level int) bool {
	return p.CanAffordCost(u.Cost(level))
}

// CanAffordCost reports whether the balance covers cost.
func (p *Player) CanAffordCost(cost decimal.Decimal) bool {
	return p.currency.GreaterThanOrEqual(cost)
}

// CheckPurchase explains why Purchase would fail, or returns nil.
func (p *Player) CheckPurchase(u *Upgrade) error {
	if u == nil {
		return ErrUnknownUpgrade
	}
	if !u.Available(p) {
		return ErrMaxLevel
	}
	if !p.CanAfford(u) {
		return ErrInsufficientFunds
	}
	return nil
}

// Purchase buys the next level of u. On failure nothing changes and false
// is returned; CheckPurchase gives the reason.
func (p *Player) Purchase(u *Upgrade) bool {
	if p.CheckPurchase(u) != nil {
		return false
	}

	p.currency = p.currency.Sub(u.NextCost(p))
	p.owned[u.ID()]++
	u.Apply(p)
	return true
}

// Level returns how many times the upgrade has been bought.
func (p *Player) Level(id string) int {
	return p.owned[id]
}

// Levels returns a copy of all owned upgrade levels.
func (p *Player) Levels() map[string]int {
	return maps.Clone(p.owned)
}

// PlayerData is the plain, serializable form of a Player.
type PlayerData struct {
	Currency       decimal.Decimal `json:"currency"`
	ClickPower     decimal.Decimal `json:"click_power"`
	AutoClickPower decimal.Decimal `json:"auto_click_power"`
	OwnedUpgrades  map[string]int  `json:"owned_upgrades"`
	Stage          int             `json:"stage"`
}

// DefaultPlayerData holds the values used for keys missing from saved data.
func DefaultPlayerData() PlayerData {
	return PlayerData{
		Currency:       decimal.Zero,
		ClickPower:     one,
		AutoClickPower: decimal.Zero,
		OwnedUpgrades:  map[string]int{},
		Stage:          1,
	}
}

// UnmarshalJSON decodes player data, keeping defaults for absent keys.
func (d *PlayerData) UnmarshalJSON(b []byte) error {
	type plain PlayerData
	v := plain(DefaultPlayerData())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = PlayerData(v)
	return nil
}

// Equal reports whether two snapshots describe the same player.
func (d PlayerData) Equal(o PlayerData) bool {
	if !d.Currency.Equal(o.Currency) ||
		!d.ClickPower.Equal(o.ClickPower) ||
		!d.AutoClickPower.Equal(o.AutoClickPower) ||
		d.Stage != o.Stage ||
		len(d.OwnedUpgrades) != len(o.OwnedUpgrades) {
		return false
	}
	for id, lvl := range d.OwnedUpgrades {
		if other, ok := o.OwnedUpgrades[id]; !ok || other != lvl {
			return false
		}
	}
	return true
}

// ToData snapshots the player.
func (p *Player) ToData() PlayerData {
	return PlayerData{
		Currency:       p.currency,
		ClickPower:     p.clickPower,
		AutoClickPower: p.autoClickPower,
		OwnedUpgrades:  maps.Clone(p.owned),
		Stage:          p.stage,
	}
}

// FromData rebuilds a player from a snapshot. Values that break the player
// invariants are repaired rather than rejected: currency is floored and
// clamped at 0, click power is at least 1, passive income at least 0, stage
// at least 1, and non-positive levels are dropped.
func FromData(d PlayerData) *Player {
	p := NewPlayer()

	if d.Currency.Sign() > 0 {
		p.currency = d.Currency.Floor()
	}
	if d.ClickPower.GreaterThanOrEqual(one) {
		p.clickPower = d.ClickPower
	}
	if d.AutoClickPower.Sign() > 0 {
		p.autoClickPower = d.AutoClickPower
	}
	if d.Stage > 1 {
		p.stage = d.Stage
	}
	for id, lvl := range d.OwnedUpgrades {
		if lvl > 0 {
			p.owned[id] = lvl
		}
	}
	return p
}
