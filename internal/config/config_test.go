package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-clicker/internal/economy"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	embedded, err := Parse(DefaultYAML())
	require.NoError(t, err)

	builtin := DefaultClickerConfig()
	require.NoError(t, Validate(&builtin))

	assert.Equal(t, builtin.Game, embedded.Game)
	assert.Equal(t, builtin.Particles, embedded.Particles)
	assert.Equal(t, builtin.Bonus, embedded.Bonus)
	require.Len(t, embedded.Upgrades, len(builtin.Upgrades))
	for i := range builtin.Upgrades {
		want, got := builtin.Upgrades[i], embedded.Upgrades[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Kind, got.Kind)
		assert.Equal(t, want.MaxLevel, got.MaxLevel)
		assert.True(t, want.BaseCost.Equal(got.BaseCost), "%s base cost", want.ID)
		assert.True(t, want.CostMultiplier.Equal(got.CostMultiplier), "%s multiplier", want.ID)
		assert.True(t, want.EffectValue.Equal(got.EffectValue), "%s effect", want.ID)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  win_amount: 500\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(500), cfg.Game.WinAmount)
	assert.Equal(t, "Mullet Bucks", cfg.Game.CurrencyName, "untouched keys keep their defaults")
	assert.Len(t, cfg.Upgrades, 4)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultClickerConfig().Game, cfg.Game)
}

func TestParseUpgradeListReplacesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
upgrades:
  - id: click_power
    base_cost: 5
    cost_multiplier: 1.1
    effect_value: 3
`))
	require.NoError(t, err)
	require.Len(t, cfg.Upgrades, 1)

	catalog, err := BuildCatalog(cfg)
	require.NoError(t, err)
	u, ok := catalog.Get("click_power")
	require.True(t, ok)
	assert.True(t, u.Cost(0).Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "click_power", u.Kind().String(), "kind inferred from the stock id")
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "game:\n  turbo: true\n"},
		{"bad income mode", "game:\n  income_mode: sometimes\n"},
		{"negative win amount", "game:\n  win_amount: -1\n"},
		{"empty currency name", "game:\n  currency_name: \"\"\n"},
		{"inverted spawn range", "bonus:\n  spawn_min: 10\n  spawn_max: 2\n"},
		{"inverted particle speed", "particles:\n  speed_min: 10\n  speed_max: 1\n"},
		{"unknown kind", "upgrades:\n  - id: x\n    kind: teleport\n    base_cost: 1\n    cost_multiplier: 1\n    effect_value: 1\n"},
		{"missing kind for custom id", "upgrades:\n  - id: x\n    base_cost: 1\n    cost_multiplier: 1\n    effect_value: 1\n"},
		{"zero base cost", "upgrades:\n  - id: click_power\n    base_cost: 0\n    cost_multiplier: 1\n    effect_value: 1\n"},
		{"fractional multiplier", "upgrades:\n  - {id: click_multiplier, base_cost: 100, cost_multiplier: 2, effect_value: 1.5}\n"},
		{"fractional click power", "upgrades:\n  - {id: click_power, base_cost: 10, cost_multiplier: 1.5, effect_value: 0.5}\n"},
		{"duplicate ids", "upgrades:\n  - {id: click_power, base_cost: 1, effect_value: 1}\n  - {id: click_power, base_cost: 2, effect_value: 1}\n"},
		{"not yaml", "game: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCatalogPlayerRoundTrip(t *testing.T) {
	for _, preset := range Presets {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultClickerConfig()
			ApplyPreset(&cfg, preset)
			catalog, err := BuildCatalog(cfg)
			require.NoError(t, err)

			p := economy.NewPlayer()
			p.Grant(decimal.NewFromInt(1_000_000))
			for round := 0; round < 6; round++ {
				for _, u := range catalog.List() {
					p.Purchase(u)
					p.Click()
					p.AutoClick(1.0 / 30)
				}
			}

			assert.True(t, p.Currency().IsInteger(), "currency %s", p.Currency())
			assert.True(t, p.ClickPower().IsInteger(), "click power %s", p.ClickPower())

			data := p.ToData()
			assert.True(t, data.Equal(economy.FromData(data).ToData()))
		})
	}
}

func TestValidationErrorUsesYAMLNames(t *testing.T) {
	_, err := Parse([]byte("game:\n  income_mode: sometimes\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.income_mode")
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  currency_name: Shells\n"), 0o600))

	cfg, src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, "Shells", cfg.Game.CurrencyName)

	_, _, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	work := t.TempDir()
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	_, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", FileName), []byte("game:\n  win_amount: 10\n"), 0o600))

	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, int64(10), cfg.Game.WinAmount)

	userPath := UserConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0o755))
	require.NoError(t, os.WriteFile(userPath, []byte("game:\n  win_amount: 20\n"), 0o600))

	cfg, src, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceUser, src)
	assert.Equal(t, int64(20), cfg.Game.WinAmount)

	// A broken user file falls through to the next location.
	require.NoError(t, os.WriteFile(userPath, []byte("game: [\n"), 0o600))
	_, src, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(DefaultClickerConfig())
	require.NoError(t, err)

	cfg, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, DefaultClickerConfig().Game, cfg.Game)
	assert.Len(t, cfg.Upgrades, len(DefaultClickerConfig().Upgrades))
}

func TestBuildCatalog(t *testing.T) {
	catalog, err := BuildCatalog(DefaultClickerConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"click_power", "auto_clicker", "click_multiplier", "stage_2_unlock"}, catalog.IDs())
	assert.Equal(t, []string{"Powers", "Stages"}, catalog.Categories())
}
