package indicator

import "github.com/c9s/stockboard/pkg/types"

// DailyReturns computes day-over-day percent change of the closes.
// The first element is zero.
func DailyReturns(closes types.Float64Slice) types.Float64Slice {
	out := make(types.Float64Slice, len(closes))
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		out[i] = (closes[i]/closes[i-1] - 1) * 100
	}
	return out
}

// Volatility is the population standard deviation of the daily returns.
func Volatility(returns types.Float64Slice) float64 {
	return returns.Std()
}
