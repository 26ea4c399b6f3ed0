package indicator

import "github.com/c9s/stockboard/pkg/types"

// rsiLossFloor keeps the average loss away from zero so RS never divides
// by zero on a straight run-up.
const rsiLossFloor = 0.0001

// RSI computes the Relative Strength Index over a rolling mean of gains and
// losses. Positions before the window fills report the neutral value 50.
//
// https://www.investopedia.com/terms/r/rsi.asp
func RSI(closes types.Float64Slice, window int) types.Float64Slice {
	out := make(types.Float64Slice, len(closes))
	for i := range out {
		out[i] = 50.0
	}
	if window <= 0 || len(closes) < window+1 {
		return out
	}

	deltas := closes.Diff()
	for i := window; i < len(closes); i++ {
		var gain, loss float64
		for _, d := range deltas[i-window+1 : i+1] {
			if d > 0 {
				gain += d
			} else {
				loss += -d
			}
		}
		gain /= float64(window)
		loss /= float64(window)
		if loss < rsiLossFloor {
			loss = rsiLossFloor
		}

		rs := gain / loss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}
