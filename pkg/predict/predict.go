// Package predict fits a linear model over recent price action and rolls it
// forward to produce a short-horizon price forecast.
package predict

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sajari/regression"

	"github.com/c9s/stockboard/pkg/indicator"
	"github.com/c9s/stockboard/pkg/types"
)

const (
	// DefaultHorizon is the number of forward days to forecast.
	DefaultHorizon = 30

	// trainingWindow bounds the history used for fitting; older bars carry
	// no signal for a 30-day horizon.
	trainingWindow = 90

	// maxDailyChange clamps the day-over-day forecast move to 3%.
	maxDailyChange = 0.03
)

var ErrNotEnoughData = errors.New("predict: not enough history to fit the model")

// Forecast predicts the close price for the given number of forward days.
// The model regresses the close on the day index, 7/14-day moving averages
// and 7-day rolling volatility, trained on the most recent two thirds of the
// training window. Forecast dates start strictly after the last bar.
func Forecast(klines types.KLineWindow, days int) (types.Prediction, error) {
	var prediction types.Prediction

	window := klines.Tail(trainingWindow)
	closes := window.Closes()
	if len(closes) < 8 {
		return prediction, ErrNotEnoughData
	}

	ma7 := fillWithPrice(indicator.SMA(closes, 7), closes, 7)
	ma14 := fillWithPrice(indicator.SMA(closes, 14), closes, 14)
	vol7 := indicator.RollingStd(closes, 7)

	r := new(regression.Regression)
	r.SetObserved("close")
	r.SetVar(0, "day")
	r.SetVar(1, "ma7")
	r.SetVar(2, "ma14")
	r.SetVar(3, "volatility")

	// Weight the fit toward the most recent trend.
	start := len(closes) / 3
	for i := start; i < len(closes); i++ {
		r.Train(regression.DataPoint(closes[i], []float64{
			float64(i), ma7[i], ma14[i], vol7[i],
		}))
	}
	if err := r.Run(); err != nil {
		return prediction, errors.Wrap(err, "predict: regression fit failed")
	}

	lastDay := float64(len(closes) - 1)
	lastDate := window.Last().Date
	lastMA7 := ma7[len(ma7)-1]
	lastMA14 := ma14[len(ma14)-1]
	lastVol := vol7[len(vol7)-1]

	prev := closes.Last()
	for i := 1; i <= days; i++ {
		p, err := r.Predict([]float64{lastDay + float64(i), lastMA7, lastMA14, lastVol})
		if err != nil {
			return types.Prediction{}, errors.Wrap(err, "predict: prediction failed")
		}

		maxMove := prev * maxDailyChange
		if p > prev+maxMove {
			p = prev + maxMove
		} else if p < prev-maxMove {
			p = prev - maxMove
		}
		p = math.Round(p*100) / 100

		prediction.Dates = append(prediction.Dates, lastDate.AddDays(i))
		prediction.Prices.Push(p)

		lastMA7 = (lastMA7*6 + p) / 7
		lastMA14 = (lastMA14*13 + p) / 14
		prev = p
	}

	return prediction, nil
}

// fillWithPrice replaces the unfilled head of a moving average with the raw
// close so the feature never carries leading zeros into the fit.
func fillWithPrice(ma, closes types.Float64Slice, window int) types.Float64Slice {
	for i := 0; i < window-1 && i < len(ma); i++ {
		ma[i] = closes[i]
	}
	return ma
}
