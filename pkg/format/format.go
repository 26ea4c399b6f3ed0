// Package format holds pure display-formatting helpers shared by the chart
// renderers, the HTTP payload assembly and the CLI output.
package format

import (
	"fmt"
	"math"

	"github.com/leekchan/accounting"
)

// NA is the sentinel rendered for missing values.
const NA = "N/A"

// Currency renders v with the given currency symbol and two decimals.
// A nil or NaN value renders as "N/A" instead of blowing up the page.
func Currency(symbol string, v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return NA
	}

	a := accounting.DefaultAccounting(symbol, 2)
	return a.FormatMoney(*v)
}

// Compact maps a magnitude to a suffixed two-decimal string:
// trillions -> T, billions -> B, millions -> M, thousands -> K,
// anything smaller stays raw with two decimals.
func Compact(v float64) string {
	switch {
	case math.Abs(v) >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case math.Abs(v) >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case math.Abs(v) >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case math.Abs(v) >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	}

	return fmt.Sprintf("%.2f", v)
}

// CompactCurrency renders a large value such as a market cap as symbol plus
// compacted magnitude, e.g. "$2.85T". Nil renders as "N/A".
func CompactCurrency(symbol string, v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return NA
	}
	return symbol + Compact(*v)
}

// Percent renders a signed percentage with two decimals, e.g. "+3.25%".
func Percent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// Float renders a plain two-decimal number, or "N/A" for nil/NaN.
func Float(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return NA
	}
	return fmt.Sprintf("%.2f", *v)
}
