package chart

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/c9s/stockboard/pkg/style"
	"github.com/c9s/stockboard/pkg/types"
)

// Chart kinds, also used as render target identifiers by the HTTP layer.
const (
	KindPrice       = "price"
	KindCandlestick = "candlestick"
	KindVolume      = "volume"
	KindReturns     = "returns"
	KindPrediction  = "prediction"
)

// PredictionHistoryTail is how many recent historical points the prediction
// chart keeps for context; older points are discarded before the Y bounds
// are computed so they can never force an auto-scale.
const PredictionHistoryTail = 30

var ErrLengthMismatch = errors.New("chart: labels and series must be equal length")

var rendererLog = log.WithField("component", "chart")

// Renderer builds chart instances from report data. Each call produces a
// fresh configuration and instance; pairing with a Registry enforces the
// at-most-one-live-instance-per-target invariant.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = 960
	}
	if height <= 0 {
		height = 400
	}
	return &Renderer{Width: width, Height: height}
}

// Price renders the close price line with SMA20/SMA50 overlays.
func (r *Renderer) Price(target string, token uint64, dates []types.Time, prices, sma20, sma50 types.Float64Slice) (*Instance, error) {
	if len(dates) != len(prices) {
		return nil, errors.Wrap(ErrLengthMismatch, "price")
	}

	canvas := NewCanvas("Price", r.Width, r.Height)
	if len(dates) == 0 {
		canvas.Series = []chart.Series{placeholderSeries()}
		return newInstance(target, KindPrice, token, canvas), nil
	}

	canvas.Series = []chart.Series{
		chart.TimeSeries{
			Name:    "Close",
			XValues: datesToTimes(dates),
			YValues: prices,
			Style: chart.Style{
				StrokeColor: style.Palette.Primary,
				StrokeWidth: 2.0,
				FillColor:   style.Palette.PrimaryAlpha,
			},
		},
	}
	canvas.Series = append(canvas.Series, smaOverlays(dates, sma20, sma50)...)
	canvas.Elements = []chart.Renderable{chart.LegendLeft(&canvas.Chart)}

	return newInstance(target, KindPrice, token, canvas), nil
}

// Candlestick renders OHLC bars with the wick overlay. If the candlestick
// configuration cannot be rendered the same data falls back to a plain
// close-price line on the same target, so the pane is never blank.
func (r *Renderer) Candlestick(target string, token uint64, klines types.KLineWindow) (*Instance, error) {
	canvas := NewCanvas("Candlestick", r.Width, r.Height)
	if len(klines) == 0 {
		canvas.Series = []chart.Series{placeholderSeries()}
		return newInstance(target, KindCandlestick, token, canvas), nil
	}

	dates := klines.Dates()
	canvas.Series = []chart.Series{
		seedSeries("high", dates, klines.Highs()),
		seedSeries("low", dates, klines.Lows()),
		NewCandleStickSeries(klines, "OHLC"),
	}

	if err := tryRender(canvas); err != nil {
		rendererLog.WithError(err).Warnf("candlestick render failed for target %s, falling back to line chart", target)

		fallback := NewCanvas("Candlestick", r.Width, r.Height)
		fallback.Series = []chart.Series{
			chart.TimeSeries{
				Name:    "Close",
				XValues: datesToTimes(dates),
				YValues: klines.Closes(),
				Style: chart.Style{
					StrokeColor: style.Palette.Primary,
					StrokeWidth: 2.0,
				},
			},
		}

		inst := newInstance(target, KindCandlestick, token, fallback)
		inst.Fallback = true
		return inst, nil
	}

	return newInstance(target, KindCandlestick, token, canvas), nil
}

// Volume renders trading volume bars in the info color.
func (r *Renderer) Volume(target string, token uint64, dates []types.Time, volumes types.Float64Slice) (*Instance, error) {
	if len(dates) != len(volumes) {
		return nil, errors.Wrap(ErrLengthMismatch, "volume")
	}

	colorf := func(float64) drawing.Color { return style.Palette.Info }
	canvas, err := r.barChart("Volume", dates, volumes, colorf)
	if err != nil {
		return nil, err
	}
	return newInstance(target, KindVolume, token, canvas), nil
}

// Returns renders daily return bars colored by sign.
func (r *Renderer) Returns(target string, token uint64, dates []types.Time, returns types.Float64Slice) (*Instance, error) {
	if len(dates) != len(returns) {
		return nil, errors.Wrap(ErrLengthMismatch, "returns")
	}

	canvas, err := r.barChart("Daily Returns %", dates, returns, returnsColor)
	if err != nil {
		return nil, err
	}
	return newInstance(target, KindReturns, token, canvas), nil
}

// Prediction renders the recent history stitched with the forecast. The two
// segments are separate series on one time axis, so they are never joined
// visually, and the Y bounds cover both so the forecast cannot be clipped.
func (r *Renderer) Prediction(target string, token uint64, dates []types.Time, prices types.Float64Slice, prediction types.Prediction) (*Instance, error) {
	if len(dates) != len(prices) {
		return nil, errors.Wrap(ErrLengthMismatch, "prediction")
	}

	canvas := NewCanvas("Price Prediction", r.Width, r.Height)
	if len(dates) == 0 && len(prediction.Dates) == 0 {
		canvas.Series = []chart.Series{placeholderSeries()}
		return newInstance(target, KindPrediction, token, canvas), nil
	}

	histDates := dates
	histPrices := prices
	if len(histDates) > PredictionHistoryTail {
		histDates = histDates[len(histDates)-PredictionHistoryTail:]
		histPrices = histPrices.Tail(PredictionHistoryTail)
	}

	lo, hi := predictionBounds(histPrices, prediction.Prices)
	canvas.YAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}

	if len(histDates) > 0 {
		canvas.Series = append(canvas.Series, chart.TimeSeries{
			Name:    "History",
			XValues: datesToTimes(histDates),
			YValues: histPrices,
			Style: chart.Style{
				StrokeColor: style.Palette.Primary,
				StrokeWidth: 2.0,
			},
		})
	}
	if len(prediction.Dates) > 0 {
		canvas.Series = append(canvas.Series, chart.TimeSeries{
			Name:    "Forecast",
			XValues: datesToTimes(prediction.Dates),
			YValues: prediction.Prices,
			Style: chart.Style{
				StrokeColor:     style.Palette.Warning,
				StrokeWidth:     2.0,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}
	canvas.Elements = []chart.Renderable{chart.LegendLeft(&canvas.Chart)}

	return newInstance(target, KindPrediction, token, canvas), nil
}

func (r *Renderer) barChart(title string, dates []types.Time, values types.Float64Slice, colorf func(float64) drawing.Color) (*Canvas, error) {
	canvas := NewCanvas(title, r.Width, r.Height)
	if len(dates) == 0 {
		canvas.Series = []chart.Series{placeholderSeries()}
		return canvas, nil
	}

	lo, hi := barBounds(values)
	canvas.YAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	canvas.Series = []chart.Series{
		seedSeries("seed", dates, values),
		NewBarSeries(title, dates, values, colorf),
	}
	return canvas, nil
}

// returnsColor classifies a return bar: non-negative is success, negative is
// danger. Exactly zero is success, never ambiguous.
func returnsColor(v float64) drawing.Color {
	if v >= 0 {
		return style.Palette.Success
	}
	return style.Palette.Danger
}

// predictionBounds pads the displayed history plus forecast union by 10% of
// its spread on both ends.
func predictionBounds(history, forecast types.Float64Slice) (lo, hi float64) {
	all := append(types.Float64Slice{}, history...)
	all = append(all, forecast...)
	if len(all) == 0 {
		return 0, 1
	}

	lo, hi = all.Min(), all.Max()
	pad := 0.1 * (hi - lo)
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

// barBounds always includes the zero baseline and guards the degenerate
// flat-series range go-chart refuses to render.
func barBounds(values types.Float64Slice) (lo, hi float64) {
	lo, hi = values.Min(), values.Max()
	if lo > 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// seedSeries is invisible; it only feeds the X/Y range computation that the
// custom overlay series do not participate in.
func seedSeries(name string, dates []types.Time, values types.Float64Slice) chart.Series {
	return chart.TimeSeries{
		Name:    name,
		XValues: datesToTimes(dates),
		YValues: values,
		Style: chart.Style{
			StrokeWidth: 0,
			StrokeColor: chart.ColorTransparent,
		},
	}
}

func smaOverlays(dates []types.Time, sma20, sma50 types.Float64Slice) (out []chart.Series) {
	for _, overlay := range []struct {
		name   string
		values types.Float64Slice
		color  drawing.Color
	}{
		{"SMA20", sma20, style.Palette.Warning},
		{"SMA50", sma50, style.Palette.Danger},
	} {
		if len(overlay.values) != len(dates) {
			continue
		}

		// SMA arrays are zero until the window fills; start the overlay at
		// its first real value instead of plotting the zeros.
		start := 0
		for start < len(overlay.values) && overlay.values[start] == 0 {
			start++
		}
		if len(overlay.values)-start < 2 {
			continue
		}

		out = append(out, chart.TimeSeries{
			Name:    overlay.name,
			XValues: datesToTimes(dates[start:]),
			YValues: overlay.values[start:],
			Style: chart.Style{
				StrokeColor: overlay.color,
				StrokeWidth: 1.0,
			},
		})
	}
	return out
}

func tryRender(canvas *Canvas) error {
	return canvas.Render(chart.PNG, io.Discard)
}
