// Package config provides YAML-based configuration for the clicker: the
// upgrade table, particle and bonus tuning, win condition and income mode.
// Defaults are embedded in the binary and may be overridden by a file.
package config

import (
	"github.com/shopspring/decimal"
)

// IncomeMode selects how passive income is credited each tick.
type IncomeMode string

const (
	// IncomePerFrame calls AutoClick(dt) every tick. Small ticks round up
	// to one unit each, so income depends on the frame rate.
	IncomePerFrame IncomeMode = "per_frame"
	// IncomeAccumulated sums dt and pays AutoClick(1) once per whole second.
	IncomeAccumulated IncomeMode = "accumulated"
)

// ClickerConfig is the complete game configuration.
type ClickerConfig struct {
	Game      GameConfig      `yaml:"game"`
	Upgrades  []UpgradeConfig `yaml:"upgrades" validate:"required,min=1,dive"`
	Particles ParticleConfig  `yaml:"particles"`
	Bonus     BonusConfig     `yaml:"bonus"`
}

// GameConfig holds session-wide settings.
type GameConfig struct {
	Title              string     `yaml:"title"`
	CurrencyName       string     `yaml:"currency_name" validate:"required"`
	WinAmount          int64      `yaml:"win_amount" validate:"gte=0"` // 0 disables winning
	IncomeMode         IncomeMode `yaml:"income_mode" validate:"required,oneof=per_frame accumulated"`
	MaxClicksPerSecond float64    `yaml:"max_clicks_per_second" validate:"gte=0"` // 0 means unlimited
	AutosaveSeconds    float64    `yaml:"autosave_seconds" validate:"gte=0"`      // 0 disables autosave
}

// UpgradeConfig is one entry of the upgrade table.
type UpgradeConfig struct {
	ID             string          `yaml:"id" validate:"required"`
	Name           string          `yaml:"name"`
	Description    string          `yaml:"description"`
	Category       string          `yaml:"category,omitempty"`
	Kind           string          `yaml:"kind,omitempty" validate:"omitempty,oneof=click_power auto_clicker click_multiplier stage_unlock"`
	BaseCost       decimal.Decimal `yaml:"base_cost"`
	CostMultiplier decimal.Decimal `yaml:"cost_multiplier"`
	EffectValue    decimal.Decimal `yaml:"effect_value"`
	MaxLevel       int             `yaml:"max_level" validate:"gte=0"` // 0 means unlimited
}

// ParticleConfig tunes the click feedback particles. Speeds are in cells
// per second and gravity in cells per second squared.
type ParticleConfig struct {
	PerClick    int     `yaml:"per_click" validate:"gte=0,lte=100"`
	LifetimeMin float64 `yaml:"lifetime_min" validate:"gt=0"`
	LifetimeMax float64 `yaml:"lifetime_max" validate:"gtefield=LifetimeMin"`
	SpeedMin    float64 `yaml:"speed_min" validate:"gte=0"`
	SpeedMax    float64 `yaml:"speed_max" validate:"gtefield=SpeedMin"`
	SizeMin     int     `yaml:"size_min" validate:"gte=1"`
	SizeMax     int     `yaml:"size_max" validate:"gtefield=SizeMin"`
	Gravity     float64 `yaml:"gravity" validate:"gte=0"`
	TextSpeed   float64 `yaml:"text_speed" validate:"gte=0"` // rise speed of the "+N" label
	Max         int     `yaml:"max" validate:"gte=1"`        // live particle cap
}

// BonusConfig tunes the bonus targets that cross the field once the
// player reaches EnabledStage.
type BonusConfig struct {
	EnabledStage int     `yaml:"enabled_stage" validate:"gte=1"`
	Value        int64   `yaml:"value" validate:"gte=0"`
	SpawnMin     float64 `yaml:"spawn_min" validate:"gt=0"`
	SpawnMax     float64 `yaml:"spawn_max" validate:"gtefield=SpawnMin"`
	SpeedMin     float64 `yaml:"speed_min" validate:"gt=0"`
	SpeedMax     float64 `yaml:"speed_max" validate:"gtefield=SpeedMin"`
	Label        string  `yaml:"label" validate:"required"`
}
