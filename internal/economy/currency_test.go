package economy

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		abbreviate bool
		expected   string
	}{
		{"zero", "0", true, "0"},
		{"below threshold", "999", true, "999"},
		{"exact thousand", "1000", true, "1K"},
		{"one and a half thousand", "1500", true, "1.5K"},
		{"rounds to one decimal", "1999", true, "2.0K"},
		{"exact half rounds to even down", "1250", true, "1.2K"},
		{"exact half rounds to even", "2250", true, "2.2K"},
		{"exact half rounds to even up", "1350", true, "1.4K"},
		{"exact million", "1000000", true, "1M"},
		{"billions", "2500000000", true, "2.5B"},
		{"beyond int64", "10000000000000000000", true, "10Qi"},
		{"suffix table exhausted", "1000000000000000000000000000000000000", true, "1000Dc"},
		{"full with separators", "1234567", false, "1,234,567"},
		{"full below threshold", "42", false, "42"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tc.amount), tc.abbreviate)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "999", FormatInt(999))
	assert.Equal(t, "1K", FormatInt(1000))
	assert.Equal(t, "1.5K", FormatInt(1500))
	assert.Equal(t, "1M", FormatInt(1_000_000))
}

func TestTimeToAmount(t *testing.T) {
	d := decimal.NewFromInt

	assert.True(t, math.IsInf(TimeToAmount(d(0), d(100), d(0)), 1), "no income never arrives")
	assert.True(t, math.IsInf(TimeToAmount(d(0), d(100), d(-3)), 1))
	assert.Equal(t, 0.0, TimeToAmount(d(100), d(50), d(10)))
	assert.Equal(t, 0.0, TimeToAmount(d(100), d(100), d(10)))
	assert.Equal(t, 10.0, TimeToAmount(d(0), d(100), d(10)))
	assert.Equal(t, 2.5, TimeToAmount(d(50), d(100), d(20)))
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{math.Inf(1), "∞"},
		{0, "0.0s"},
		{30, "30.0s"},
		{90, "1.5m"},
		{5400, "1.5h"},
		{129600, "1.5d"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, FormatTime(tc.seconds), "FormatTime(%v)", tc.seconds)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "0:00", FormatClock(-5))
	assert.Equal(t, "1:05", FormatClock(65.9))
	assert.Equal(t, "1:02:05", FormatClock(3725))
}
