package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/stockboard/pkg/indicator"
	"github.com/c9s/stockboard/pkg/types"
)

func floatPtr(v float64) *float64 { return &v }

func predictionEndingAt(price float64) types.Prediction {
	return types.Prediction{
		Dates:  []types.Time{types.NewTimeFromDate(2024, time.June, 1)},
		Prices: types.Float64Slice{price},
	}
}

func Test_BuildRecommendation_StrongBuy(t *testing.T) {
	trend := indicator.TrendStrength{Trend: "Strong Uptrend", Strength: 5, RSI: 60}
	closes := types.Float64Slice{100}
	metrics := types.Metrics{
		RecommendationKey: "buy",
		TargetMeanPrice:   floatPtr(120),
		PERatio:           floatPtr(18),
	}

	// forecast +20%, target +20%, analyst buy, healthy P/E
	rec := BuildRecommendation(trend, closes, metrics, predictionEndingAt(120))

	assert.Equal(t, "Strong Buy", rec.Recommendation)
	assert.Equal(t, 5+2+1+2+1, rec.Score)
	assert.Equal(t, 20.0, rec.PredictedChange)
	assert.Equal(t, 20.0, rec.TargetPotential)
	assert.NotEmpty(t, rec.Explanation)
}

func Test_BuildRecommendation_StrongSell(t *testing.T) {
	trend := indicator.TrendStrength{Trend: "Strong Downtrend", Strength: -5, RSI: 25}
	closes := types.Float64Slice{100}
	metrics := types.Metrics{
		RecommendationKey: "sell",
		TargetMeanPrice:   floatPtr(80),
		PERatio:           floatPtr(90),
	}

	rec := BuildRecommendation(trend, closes, metrics, predictionEndingAt(80))

	assert.Equal(t, "Strong Sell", rec.Recommendation)
	assert.Equal(t, -5-2-1-2-1, rec.Score)
	assert.Equal(t, -20.0, rec.PredictedChange)
}

func Test_BuildRecommendation_Hold(t *testing.T) {
	trend := indicator.TrendStrength{Trend: "Sideways", Strength: 0, RSI: 50}
	closes := types.Float64Slice{100}

	rec := BuildRecommendation(trend, closes, types.Metrics{}, types.Prediction{})

	assert.Equal(t, "Hold", rec.Recommendation)
	assert.Equal(t, 0, rec.Score)
	assert.Zero(t, rec.PredictedPrice)
	assert.Zero(t, rec.TargetPotential)
}

func Test_BuildRecommendation_EmptyCloses(t *testing.T) {
	trend := indicator.TrendStrength{Trend: "Sideways"}

	// no price history means no ratio components, only the trend score
	rec := BuildRecommendation(trend, nil, types.Metrics{TargetMeanPrice: floatPtr(50)}, predictionEndingAt(55))
	assert.Equal(t, 0, rec.Score)
}

func Test_changeComponent(t *testing.T) {
	assert.Equal(t, 2, changeComponent(20))
	assert.Equal(t, 1, changeComponent(10))
	assert.Equal(t, 0, changeComponent(3))
	assert.Equal(t, 0, changeComponent(-3))
	assert.Equal(t, -1, changeComponent(-10))
	assert.Equal(t, -2, changeComponent(-20))
}
