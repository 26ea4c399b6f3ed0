package chart

import (
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/c9s/stockboard/pkg/types"
)

var _ chart.Series = &BarSeries{}

// BarSeries draws vertical bars from the zero line, one per point, with a
// per-value color. go-chart's native bar chart is categorical; this series
// keeps bars on the shared time axis instead.
type BarSeries struct {
	Name string

	dates  []time.Time
	values types.Float64Slice
	colorf func(v float64) drawing.Color
}

func NewBarSeries(name string, dates []types.Time, values types.Float64Slice, colorf func(v float64) drawing.Color) *BarSeries {
	return &BarSeries{
		Name:   name,
		dates:  datesToTimes(dates),
		values: values,
		colorf: colorf,
	}
}

func (bs *BarSeries) GetName() string {
	return bs.Name
}

func (bs *BarSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 1.0,
	}
}

func (bs *BarSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (bs *BarSeries) Validate() error {
	return nil
}

func (bs *BarSeries) Render(r chart.Renderer, b chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	if len(bs.values) == 0 {
		return
	}

	half := bodyHalfWidth(b.Width(), len(bs.values))
	zeroPx := b.Bottom - yrange.Translate(0)
	for i, v := range bs.values {
		if i >= len(bs.dates) {
			break
		}

		x := b.Left + xrange.Translate(timeToFloat64(bs.dates[i]))
		vPx := b.Bottom - yrange.Translate(v)

		top, bottom := vPx, zeroPx
		if top > bottom {
			top, bottom = bottom, top
		}
		if top == bottom {
			bottom++
		}

		r.SetFillColor(bs.colorf(v))
		r.MoveTo(x-half, top)
		r.LineTo(x+half, top)
		r.LineTo(x+half, bottom)
		r.LineTo(x-half, bottom)
		r.Close()
		r.Fill()
	}
}
