package chart

import (
	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/stockboard/pkg/style"
	"github.com/c9s/stockboard/pkg/types"
)

var _ chart.Series = &CandleStickSeries{}

// CandleStickSeries renders OHLC bars without a native candlestick chart
// type: each bar body is a filled rect spanning open to close, and the upper
// and lower wicks are stroked on every render pass, so they stay correctly
// positioned whenever the chart is redrawn or resized.
type CandleStickSeries struct {
	Name string

	klines types.KLineWindow
}

func NewCandleStickSeries(klines types.KLineWindow, name string) *CandleStickSeries {
	return &CandleStickSeries{
		Name:   name,
		klines: klines,
	}
}

func (cs *CandleStickSeries) GetName() string {
	return cs.Name
}

func (cs *CandleStickSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 1.0,
	}
}

func (cs *CandleStickSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (cs *CandleStickSeries) Validate() error {
	return nil
}

// Render draws one body plus two wicks per bar. A zero-length input draws
// nothing and is not an error.
func (cs *CandleStickSeries) Render(r chart.Renderer, b chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	if len(cs.klines) == 0 {
		return
	}

	half := bodyHalfWidth(b.Width(), len(cs.klines))
	for _, k := range cs.klines {
		x := b.Left + xrange.Translate(timeToFloat64(k.Date.Time()))
		openPx := b.Bottom - yrange.Translate(k.Open)
		closePx := b.Bottom - yrange.Translate(k.Close)
		highPx := b.Bottom - yrange.Translate(k.High)
		lowPx := b.Bottom - yrange.Translate(k.Low)

		color := style.Palette.Danger
		if k.Bullish() {
			color = style.Palette.Success
		}

		top, bottom := bodySpan(openPx, closePx)
		r.SetFillColor(color)
		r.MoveTo(x-half, top)
		r.LineTo(x+half, top)
		r.LineTo(x+half, bottom)
		r.LineTo(x-half, bottom)
		r.Close()
		r.Fill()

		upperTop, upperBottom, lowerTop, lowerBottom := wickSpans(openPx, highPx, lowPx, closePx)
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1.0)
		r.MoveTo(x, upperTop)
		r.LineTo(x, upperBottom)
		r.Stroke()
		r.MoveTo(x, lowerTop)
		r.LineTo(x, lowerBottom)
		r.Stroke()
	}
}

// bodySpan orders the open/close pixels into a screen-space body rect.
// A doji still gets one pixel of body so the bar does not vanish.
func bodySpan(openPx, closePx int) (top, bottom int) {
	top, bottom = openPx, closePx
	if top > bottom {
		top, bottom = bottom, top
	}
	if top == bottom {
		bottom++
	}
	return top, bottom
}

// wickSpans computes the two wick segments in screen space: the upper wick
// runs from the high down to min(openPx, closePx), the lower wick from
// max(openPx, closePx) down to the low. Pixel Y grows downward, prices grow
// upward, so min/max flip accordingly.
func wickSpans(openPx, highPx, lowPx, closePx int) (upperTop, upperBottom, lowerTop, lowerBottom int) {
	bodyTop := openPx
	if closePx < bodyTop {
		bodyTop = closePx
	}
	bodyBottom := openPx
	if closePx > bodyBottom {
		bodyBottom = closePx
	}
	return highPx, bodyTop, bodyBottom, lowPx
}

// bodyHalfWidth sizes candle bodies to the pane width, leaving a gap between
// neighbors, clamped to [1, 10] pixels.
func bodyHalfWidth(paneWidth, count int) int {
	if count == 0 {
		return 1
	}

	half := paneWidth / count / 3
	if half < 1 {
		half = 1
	} else if half > 10 {
		half = 10
	}
	return half
}
