package indicator

import "github.com/c9s/stockboard/pkg/types"

// SMA computes the simple moving average over the trailing window.
// Positions before the window fills are zero so the output stays parallel
// to the input (the payload contract requires equal-length arrays).
func SMA(values types.Float64Slice, window int) types.Float64Slice {
	out := make(types.Float64Slice, len(values))
	if window <= 0 {
		return out
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// RollingMean is SMA with a fill value for the positions before the window
// fills, matching how the trend analysis seeds unfilled averages.
func RollingMean(values types.Float64Slice, window int, fill float64) types.Float64Slice {
	out := SMA(values, window)
	for i := 0; i < window-1 && i < len(out); i++ {
		out[i] = fill
	}
	return out
}

// RollingStd computes the population standard deviation over the trailing
// window; unfilled positions are zero.
func RollingStd(values types.Float64Slice, window int) types.Float64Slice {
	out := make(types.Float64Slice, len(values))
	if window <= 0 {
		return out
	}

	for i := window - 1; i < len(values); i++ {
		out[i] = values[i-window+1 : i+1].Std()
	}
	return out
}
