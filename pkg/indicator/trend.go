package indicator

import (
	"math"

	"github.com/c9s/stockboard/pkg/types"
)

// TrendStrength summarizes the directional state of a price series.
type TrendStrength struct {
	Trend         string  `json:"trend"`
	Strength      int     `json:"strength"`
	RecentReturns float64 `json:"recent_returns"`
	Volatility    float64 `json:"volatility"`
	MomentumRatio float64 `json:"momentum_ratio"`
	RSI           float64 `json:"rsi"`
	Overbought    bool    `json:"overbought"`
	Oversold      bool    `json:"oversold"`
}

// AnalyzeTrend classifies the trend of the close series by the price position
// relative to the 20/50/200-day moving averages, adjusted for moving-average
// crosses and RSI extremes. Strength lands in [-7, 7].
func AnalyzeTrend(closes types.Float64Slice) TrendStrength {
	result := TrendStrength{Trend: "Sideways"}
	if len(closes) == 0 {
		return result
	}

	returns := DailyReturns(closes)
	result.RecentReturns = round2(returns.Tail(20).Mean())
	result.Volatility = round2(returns.Std())

	var positive, negative float64
	for _, r := range returns {
		if r > 0 {
			positive++
		} else if r < 0 {
			negative++
		}
	}
	if negative < 1 {
		negative = 1
	}
	result.MomentumRatio = round2(positive / negative)

	rsi := RSI(closes, 14)
	result.RSI = round2(rsi.Last())

	// Averages that have not filled their window yet fall back to the first
	// close, same as the price itself at series start.
	fill := closes[0]
	sma20 := RollingMean(closes, 20, fill)
	sma50 := RollingMean(closes, 50, fill)
	sma200 := RollingMean(closes, 200, fill)

	price := closes.Last()
	above20 := price > sma20.Last()
	above50 := price > sma50.Last()
	above200 := price > sma200.Last()

	switch {
	case above20 && above50 && above200:
		result.Trend, result.Strength = "Strong Uptrend", 5
	case above20 && above50:
		result.Trend, result.Strength = "Uptrend", 4
	case above20:
		result.Trend, result.Strength = "Weak Uptrend", 3
	case !above20 && !above50 && !above200:
		result.Trend, result.Strength = "Strong Downtrend", -5
	case !above20 && !above50:
		result.Trend, result.Strength = "Downtrend", -4
	case !above20:
		result.Trend, result.Strength = "Weak Downtrend", -3
	default:
		result.Trend, result.Strength = "Sideways", 0
	}

	if len(sma20) >= 2 && len(sma50) >= 2 {
		prev20, prev50 := sma20[len(sma20)-2], sma50[len(sma50)-2]
		goldenCross := sma20.Last() > sma50.Last() && prev20 <= prev50
		deathCross := sma20.Last() < sma50.Last() && prev20 >= prev50

		if goldenCross {
			result.Trend = "Golden Cross (Bullish Signal)"
			result.Strength++
		} else if deathCross {
			result.Trend = "Death Cross (Bearish Signal)"
			result.Strength--
		}
	}

	if result.RSI > 70 {
		result.Overbought = true
		result.Trend += " (Overbought)"
		result.Strength--
	} else if result.RSI < 30 {
		result.Oversold = true
		result.Trend += " (Oversold)"
		result.Strength++
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
