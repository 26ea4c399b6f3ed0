// Package chart turns a stock report into rendered dashboard panes: price,
// candlestick, volume, daily returns and prediction charts. Every render
// call builds a brand-new configuration from the input payload; nothing is
// mutated in place across renders.
package chart

import (
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/stockboard/pkg/style"
	"github.com/c9s/stockboard/pkg/types"
)

// Canvas wraps a go-chart chart configured for a date X axis and a linear
// Y axis with the shared palette.
type Canvas struct {
	chart.Chart
}

func NewCanvas(title string, width, height int) *Canvas {
	return &Canvas{
		Chart: chart.Chart{
			Title:  title,
			Width:  width,
			Height: height,
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeDateValueFormatter,
				Style: chart.Style{
					StrokeColor: style.Palette.Grid,
					FontColor:   style.Palette.Text,
				},
			},
			YAxis: chart.YAxis{
				Style: chart.Style{
					StrokeColor: style.Palette.Grid,
					FontColor:   style.Palette.Text,
				},
			},
		},
	}
}

// timeToFloat64 matches the conversion chart.TimeSeries applies to its
// XValues, so custom series share the same X domain as the built-in ones.
func timeToFloat64(t time.Time) float64 {
	return float64(t.UnixNano())
}

func datesToTimes(dates []types.Time) []time.Time {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		out[i] = d.Time()
	}
	return out
}

// placeholderSeries keeps go-chart happy on an empty dataset: it renders the
// axes and grid but draws nothing visible.
func placeholderSeries() chart.Series {
	now := time.Now()
	// the y values differ because go-chart rejects a zero-delta range
	return chart.TimeSeries{
		Name:    "empty",
		XValues: []time.Time{now.AddDate(0, 0, -1), now},
		YValues: []float64{0, 1},
		Style: chart.Style{
			StrokeWidth: 0,
			StrokeColor: chart.ColorTransparent,
		},
	}
}
