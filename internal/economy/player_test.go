package economy

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDecimal(t *testing.T, expected int64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, actual.Equal(dec(expected)), "expected %d, got %s %v", expected, actual, msgAndArgs)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()

	assertDecimal(t, 0, p.Currency())
	assertDecimal(t, 1, p.ClickPower())
	assertDecimal(t, 0, p.AutoClickPower())
	assert.Equal(t, 1, p.Stage())
	assert.Empty(t, p.Levels())
	assert.Equal(t, 0, p.Level("click_power"))
}

func TestClickAdditive(t *testing.T) {
	p := NewPlayer()
	p.clickPower = dec(7)

	for i := 0; i < 25; i++ {
		gained := p.Click()
		assertDecimal(t, 7, gained)
	}
	assertDecimal(t, 175, p.Currency())
}

func TestAutoClick(t *testing.T) {
	tests := []struct {
		name     string
		power    int64
		dt       float64
		expected int64
	}{
		{"zero rate is a no-op", 0, 1.0, 0},
		{"zero dt is forced to one", 1, 0, 1},
		{"fraction floors to zero then forced to one", 1, 0.5, 1},
		{"whole seconds", 2, 1.0, 2},
		{"floored product", 3, 1.5, 4},
		{"negative dt counts as zero", 5, -2, 1},
		{"NaN counts as zero", 5, math.NaN(), 1},
		{"infinite dt counts as zero", 5, math.Inf(1), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer()
			p.autoClickPower = dec(tc.power)

			gained := p.AutoClick(tc.dt)
			assertDecimal(t, tc.expected, gained)
			assertDecimal(t, tc.expected, p.Currency())
		})
	}
}

func TestAutoClickFrequencyDependence(t *testing.T) {
	// Sixty small ticks each floor to zero and are raised to one, so they
	// pay sixty times what a single one-second tick pays.
	fine := NewPlayer()
	fine.autoClickPower = dec(1)
	for i := 0; i < 60; i++ {
		fine.AutoClick(1.0 / 60)
	}

	coarse := NewPlayer()
	coarse.autoClickPower = dec(1)
	coarse.AutoClick(1.0)

	assertDecimal(t, 60, fine.Currency())
	assertDecimal(t, 1, coarse.Currency())
}

func TestPurchaseUnaffordableLeavesStateUnchanged(t *testing.T) {
	p := NewPlayer()
	p.currency = dec(9)
	u := clickPowerUpgrade()

	before := p.ToData()
	assert.False(t, p.CanAfford(u))
	assert.ErrorIs(t, p.CheckPurchase(u), ErrInsufficientFunds)
	assert.False(t, p.Purchase(u))
	assert.True(t, before.Equal(p.ToData()))
}

func TestPurchaseNilUpgrade(t *testing.T) {
	p := NewPlayer()
	assert.ErrorIs(t, p.CheckPurchase(nil), ErrUnknownUpgrade)
	assert.False(t, p.Purchase(nil))
}

func TestPurchaseUsesNextLevelCost(t *testing.T) {
	p := NewPlayer()
	p.currency = dec(1000)
	u := clickPowerUpgrade()

	expected := []int64{10, 15, 22, 33, 50}
	balance := int64(1000)
	for level, cost := range expected {
		assertDecimal(t, cost, u.NextCost(p), "level %d", level)
		require.True(t, p.Purchase(u))
		balance -= cost
		assertDecimal(t, balance, p.Currency())
	}

	assert.Equal(t, 5, p.Level(u.ID()))
	assertDecimal(t, 6, p.ClickPower())
}

func TestPurchaseEnforcesMaxLevel(t *testing.T) {
	p := NewPlayer()
	p.currency = dec(1_000_000)
	u := autoClickerUpgrade()

	for i := 0; i < u.MaxLevel(); i++ {
		require.True(t, p.Purchase(u))
	}
	before := p.ToData()

	assert.ErrorIs(t, p.CheckPurchase(u), ErrMaxLevel)
	assert.False(t, p.Purchase(u))
	assert.True(t, before.Equal(p.ToData()))
	assert.Equal(t, u.MaxLevel(), p.Level(u.ID()))
	assertDecimal(t, 5, p.AutoClickPower())
}

func TestCanAffordVariants(t *testing.T) {
	p := NewPlayer()
	p.currency = dec(15)
	u := clickPowerUpgrade()

	assert.True(t, p.CanAfford(u))
	assert.True(t, p.CanAffordLevel(u, 1))
	assert.False(t, p.CanAffordLevel(u, 2))
	assert.True(t, p.CanAffordCost(dec(15)))
	assert.False(t, p.CanAffordCost(dec(16)))
}

func TestGrant(t *testing.T) {
	p := NewPlayer()
	p.Grant(dec(150))
	p.Grant(dec(-10))
	p.Grant(decimal.Zero)
	p.Grant(decimal.RequireFromString("2.9"))
	assertDecimal(t, 152, p.Currency())
}

func TestLevelsIsCopy(t *testing.T) {
	p := NewPlayer()
	p.currency = dec(100)
	require.True(t, p.Purchase(clickPowerUpgrade()))

	levels := p.Levels()
	levels["click_power"] = 99
	assert.Equal(t, 1, p.Level("click_power"))
}

func TestScenarioClickThenBuy(t *testing.T) {
	p := NewPlayer()

	p.Click()
	assertDecimal(t, 1, p.Currency())

	p.currency = dec(15)
	u := clickPowerUpgrade()
	assertDecimal(t, 10, u.Cost(0))

	require.True(t, p.Purchase(u))
	assertDecimal(t, 5, p.Currency())
	assertDecimal(t, 2, p.ClickPower())
	assert.Equal(t, map[string]int{"click_power": 1}, p.Levels())
}

func TestScenarioPassiveIncome(t *testing.T) {
	p := NewPlayer()
	p.autoClickPower = dec(2)

	assertDecimal(t, 2, p.AutoClick(1.0))
	assertDecimal(t, 2, p.Currency())

	assertDecimal(t, 1, p.AutoClick(0.5))
	assertDecimal(t, 3, p.Currency())
}

func TestCurrencyBeyondInt64(t *testing.T) {
	p := NewPlayer()
	p.currency = decimal.NewFromInt(math.MaxInt64)
	p.clickPower = decimal.NewFromInt(math.MaxInt64)

	p.Click()
	p.Click()

	expected := decimal.NewFromInt(math.MaxInt64).Mul(dec(3))
	assert.True(t, p.Currency().Equal(expected))
	assert.True(t, p.Currency().IsPositive())
}

func TestPlayerDataRoundTrip(t *testing.T) {
	p := NewPlayer()
	p.currency = dec(5000)
	require.True(t, p.Purchase(clickPowerUpgrade()))
	require.True(t, p.Purchase(autoClickerUpgrade()))
	require.True(t, p.Purchase(multiplierUpgrade()))
	require.True(t, p.Purchase(stageUpgrade()))

	data := p.ToData()
	assert.True(t, data.Equal(FromData(data).ToData()))

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded PlayerData
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, data.Equal(decoded))
	assert.True(t, data.Equal(FromData(decoded).ToData()))
}

func TestPlayerDataDefaults(t *testing.T) {
	var d PlayerData
	require.NoError(t, json.Unmarshal([]byte(`{"currency": 42}`), &d))

	assertDecimal(t, 42, d.Currency)
	assertDecimal(t, 1, d.ClickPower)
	assertDecimal(t, 0, d.AutoClickPower)
	assert.Equal(t, 1, d.Stage)
	assert.NotNil(t, d.OwnedUpgrades)
	assert.Empty(t, d.OwnedUpgrades)
}

func TestPlayerDataMalformed(t *testing.T) {
	var d PlayerData
	assert.Error(t, json.Unmarshal([]byte(`{"currency": [}`), &d))
}

func TestFromDataRepairsInvariants(t *testing.T) {
	p := FromData(PlayerData{
		Currency:       decimal.RequireFromString("-12.5"),
		ClickPower:     decimal.RequireFromString("0.5"),
		AutoClickPower: dec(-4),
		OwnedUpgrades:  map[string]int{"click_power": 2, "auto_clicker": -1, "click_multiplier": 0},
		Stage:          0,
	})

	assertDecimal(t, 0, p.Currency())
	assertDecimal(t, 1, p.ClickPower())
	assertDecimal(t, 0, p.AutoClickPower())
	assert.Equal(t, 1, p.Stage())
	assert.Equal(t, map[string]int{"click_power": 2}, p.Levels())

	assertDecimal(t, 7, FromData(PlayerData{Currency: decimal.RequireFromString("7.9")}).Currency())
}
