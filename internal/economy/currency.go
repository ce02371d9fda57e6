// Package economy implements the progression model of the clicker: currency
// formatting and projections, upgrade definitions with exponential cost
// curves, and the mutable Player state that clicks, earns passive income
// and buys upgrades.
//
// All amounts are decimal.Decimal so balances grow without bound instead of
// wrapping at a machine word. The package has no rendering or storage
// dependencies.
package economy

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// suffixes are the abbreviation units, one per power of 1000.
var suffixes = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc"}

var thousand = decimal.NewFromInt(1000)

// Format renders a currency amount for display.
//
// Amounts below 1000, or any amount when abbreviate is false, are written in
// full with thousands separators. Larger amounts are scaled down by 1000 per
// suffix until the value drops below 1000 or the suffix table runs out, then
// printed with one decimal place ("1.5K") or as a whole number when the
// scaled value is exact ("1K").
func Format(amount decimal.Decimal, abbreviate bool) string {
	if !abbreviate || amount.LessThan(thousand) {
		return formatFull(amount)
	}

	scaled := amount
	idx := 0
	for scaled.GreaterThanOrEqual(thousand) && idx < len(suffixes)-1 {
		scaled = scaled.Shift(-3)
		idx++
	}

	if scaled.IsInteger() {
		return scaled.StringFixed(0) + suffixes[idx]
	}
	return scaled.StringFixedBank(1) + suffixes[idx]
}

// FormatInt is Format for plain integers with abbreviation enabled.
func FormatInt(amount int64) string {
	return Format(decimal.NewFromInt(amount), true)
}

// formatFull writes the amount with thousands separators.
func formatFull(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return humanize.BigComma(amount.BigInt())
	}
	return humanize.CommafWithDigits(amount.InexactFloat64(), 2)
}

// TimeToAmount projects how many seconds of passive income are needed to
// grow current into target. It returns +Inf when there is no income and 0
// when the target is already reached.
func TimeToAmount(current, target, incomePerSecond decimal.Decimal) float64 {
	if incomePerSecond.Sign() <= 0 {
		return math.Inf(1)
	}

	needed := target.Sub(current)
	if needed.Sign() <= 0 {
		return 0
	}

	return needed.Div(incomePerSecond).InexactFloat64()
}

// FormatTime renders a duration in seconds using the largest fitting unit
// out of seconds, minutes, hours and days.
func FormatTime(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "∞"
	}

	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%.1fm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%.1fh", hours)
	}

	return fmt.Sprintf("%.1fd", hours/24)
}

// FormatClock renders elapsed play time as m:ss or h:mm:ss.
func FormatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
