package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DifficultyPreset is a named adjustment of the upgrade economy.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

var (
	half           = decimal.RequireFromString("0.5")
	hardMultiplier = decimal.RequireFromString("1.25")
	one            = decimal.NewFromInt(1)
)

// ApplyPreset adjusts the upgrade table for a difficulty preset.
//
// Easy halves every base cost (never below 1). Hard raises the growth part
// of each cost multiplier by 25%, so 1.5 becomes 1.625; one-time unlocks
// with a multiplier of 1 are unchanged. Normal leaves the table alone.
func ApplyPreset(cfg *ClickerConfig, preset DifficultyPreset) {
	upgrades := make([]UpgradeConfig, len(cfg.Upgrades))
	copy(upgrades, cfg.Upgrades)

	for i := range upgrades {
		u := &upgrades[i]
		switch preset {
		case DifficultyEasy:
			u.BaseCost = decimal.Max(u.BaseCost.Mul(half).Floor(), one)
		case DifficultyHard:
			growth := u.CostMultiplier.Sub(one)
			if growth.IsPositive() {
				u.CostMultiplier = one.Add(growth.Mul(hardMultiplier))
			}
		}
	}
	cfg.Upgrades = upgrades
}
