package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/stockboard/pkg/types"
)

func testKLines(n int) types.KLineWindow {
	start := types.NewTimeFromDate(2024, time.March, 1)
	var w types.KLineWindow
	for i := 0; i < n; i++ {
		base := 100 + float64(i)
		up := i%2 == 0
		open, close := base, base+2
		if !up {
			open, close = base+2, base
		}
		w = append(w, types.KLine{
			Date:   start.AddDays(i),
			Open:   open,
			High:   base + 3,
			Low:    base - 1,
			Close:  close,
			Volume: 1000 + float64(i)*10,
		})
	}
	return w
}

func Test_wickSpans(t *testing.T) {
	// pixel Y grows downward: high=10 is the topmost pixel, low=90 the lowest
	upperTop, upperBottom, lowerTop, lowerBottom := wickSpans(40, 10, 90, 60)

	assert.Equal(t, 10, upperTop)
	assert.Equal(t, 40, upperBottom) // min(openPx, closePx)
	assert.Equal(t, 60, lowerTop)    // max(openPx, closePx)
	assert.Equal(t, 90, lowerBottom)

	// bearish bar, close pixel above open pixel
	upperTop, upperBottom, lowerTop, lowerBottom = wickSpans(60, 10, 90, 40)
	assert.Equal(t, 10, upperTop)
	assert.Equal(t, 40, upperBottom)
	assert.Equal(t, 60, lowerTop)
	assert.Equal(t, 90, lowerBottom)
}

func Test_bodySpan(t *testing.T) {
	top, bottom := bodySpan(30, 50)
	assert.Equal(t, 30, top)
	assert.Equal(t, 50, bottom)

	top, bottom = bodySpan(50, 30)
	assert.Equal(t, 30, top)
	assert.Equal(t, 50, bottom)

	// a doji keeps one pixel of body
	top, bottom = bodySpan(40, 40)
	assert.Equal(t, 40, top)
	assert.Equal(t, 41, bottom)
}

func Test_bodyHalfWidth(t *testing.T) {
	assert.Equal(t, 1, bodyHalfWidth(900, 0))
	assert.Equal(t, 1, bodyHalfWidth(900, 500))
	assert.Equal(t, 10, bodyHalfWidth(900, 5))
	assert.Equal(t, 5, bodyHalfWidth(900, 60))
}

func Test_CandleStickSeries_RenderEmpty(t *testing.T) {
	r := NewRenderer(640, 320)

	inst, err := r.Candlestick("candlestick/TEST/1y", 1, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, inst.Render(&buf))
	assert.NotZero(t, buf.Len())
}

func Test_CandleStickSeries_Render(t *testing.T) {
	r := NewRenderer(640, 320)

	inst, err := r.Candlestick("candlestick/TEST/1y", 1, testKLines(40))
	require.NoError(t, err)
	assert.False(t, inst.Fallback)

	var buf bytes.Buffer
	require.NoError(t, inst.Render(&buf))
	assert.NotZero(t, buf.Len())
}
