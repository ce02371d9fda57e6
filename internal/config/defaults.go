package config

import (
	_ "embed"

	"github.com/shopspring/decimal"
)

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClickerYAML
}

// DefaultClickerConfig returns the hardcoded configuration, used when the
// embedded file cannot be parsed. It mirrors defaults/clicker.yaml.
func DefaultClickerConfig() ClickerConfig {
	d := decimal.NewFromInt
	return ClickerConfig{
		Game: GameConfig{
			Title:              "Liam Clicker V2",
			CurrencyName:       "Mullet Bucks",
			WinAmount:          2000,
			IncomeMode:         IncomePerFrame,
			MaxClicksPerSecond: 20,
			AutosaveSeconds:    30,
		},
		Upgrades: []UpgradeConfig{
			{
				ID:             "click_power",
				Name:           "Click Power",
				Description:    "Increases the value of each click",
				Category:       "Powers",
				Kind:           "click_power",
				BaseCost:       d(10),
				CostMultiplier: decimal.RequireFromString("1.5"),
				EffectValue:    d(1),
				MaxLevel:       5,
			},
			{
				ID:             "auto_clicker",
				Name:           "Auto Clicker",
				Description:    "Automatically clicks once per second",
				Category:       "Powers",
				Kind:           "auto_clicker",
				BaseCost:       d(50),
				CostMultiplier: decimal.RequireFromString("1.8"),
				EffectValue:    d(1),
				MaxLevel:       5,
			},
			{
				ID:             "click_multiplier",
				Name:           "Click Multiplier",
				Description:    "Multiplies the value of each click",
				Category:       "Powers",
				Kind:           "click_multiplier",
				BaseCost:       d(100),
				CostMultiplier: d(2),
				EffectValue:    d(2),
				MaxLevel:       5,
			},
			{
				ID:             "stage_2_unlock",
				Name:           "Release the LEVI!",
				Description:    "Unlock Stage 2 with Levi attacks",
				Category:       "Stages",
				Kind:           "stage_unlock",
				BaseCost:       d(100),
				CostMultiplier: d(1),
				EffectValue:    d(2),
				MaxLevel:       1,
			},
		},
		Particles: ParticleConfig{
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
		},
		Bonus: BonusConfig{
			EnabledStage: 2,
			Value:        150,
			SpawnMin:     5,
			SpawnMax:     15,
			SpeedMin:     10,
			SpeedMax:     30,
			Label:        "<LEVI>",
		},
	}
}
