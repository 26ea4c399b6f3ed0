package service

import (
	"math"

	"github.com/c9s/stockboard/pkg/indicator"
	"github.com/c9s/stockboard/pkg/types"
)

// BuildRecommendation turns the trend analysis, the forecast and the analyst
// snapshot into a scored buy/hold/sell call. The score is a plain sum of
// bounded components, nothing fancier than the inputs deserve.
func BuildRecommendation(trend indicator.TrendStrength, closes types.Float64Slice, metrics types.Metrics, prediction types.Prediction) types.Recommendation {
	rec := types.Recommendation{
		Trend:                 trend.Trend,
		RSI:                   trend.RSI,
		AnalystRecommendation: metrics.RecommendationKey,
		TargetMeanPrice:       metrics.TargetMeanPrice,
		Prediction:            prediction,
	}

	score := trend.Strength

	currentPrice := closes.Last()
	if len(prediction.Prices) > 0 && currentPrice > 0 {
		rec.PredictedPrice = prediction.Prices.Last()
		rec.PredictedChange = round2((rec.PredictedPrice/currentPrice - 1) * 100)
		score += changeComponent(rec.PredictedChange)
	}

	switch metrics.RecommendationKey {
	case "buy", "strongBuy", "strong_buy":
		score++
	case "sell", "strongSell", "strong_sell":
		score--
	}

	if metrics.TargetMeanPrice != nil && currentPrice > 0 {
		rec.TargetPotential = round2((*metrics.TargetMeanPrice/currentPrice - 1) * 100)
		score += changeComponent(rec.TargetPotential)
	}

	if pe := metrics.PERatio; pe != nil {
		if *pe > 5 && *pe < 25 {
			score++
		} else if *pe > 50 {
			score--
		}
	}

	rec.Score = score
	rec.Recommendation, rec.Explanation = recommendationLabel(score)
	return rec
}

// changeComponent maps an expected percent change to a score contribution.
func changeComponent(change float64) int {
	switch {
	case change > 15:
		return 2
	case change > 5:
		return 1
	case change < -15:
		return -2
	case change < -5:
		return -1
	}
	return 0
}

func recommendationLabel(score int) (string, string) {
	switch {
	case score >= 5:
		return "Strong Buy", "The stock shows strong positive trends, good analyst ratings, and favorable valuation metrics."
	case score >= 3:
		return "Buy", "The stock shows positive trends and potential for growth based on technical and fundamental factors."
	case score >= 1:
		return "Moderate Buy", "The stock shows some positive indicators, but with limited conviction."
	case score >= -1:
		return "Hold", "The stock shows mixed signals with no clear trend direction."
	case score >= -3:
		return "Moderate Sell", "The stock shows some negative indicators that suggest caution."
	case score >= -5:
		return "Sell", "The stock shows negative trends and unfavorable metrics."
	}
	return "Strong Sell", "The stock shows strong negative trends, poor analyst ratings, and concerning valuation metrics."
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
