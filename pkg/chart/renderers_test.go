package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/stockboard/pkg/style"
	"github.com/c9s/stockboard/pkg/types"
)

func Test_predictionBounds(t *testing.T) {
	lo, hi := predictionBounds(types.Float64Slice{10, 12, 8}, types.Float64Slice{9, 11})
	assert.InDelta(t, 7.6, lo, 0.001)
	assert.InDelta(t, 12.4, hi, 0.001)

	// flat union still yields a non-degenerate range
	lo, hi = predictionBounds(types.Float64Slice{5, 5}, types.Float64Slice{5})
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 6.0, hi)

	lo, hi = predictionBounds(nil, nil)
	assert.Less(t, lo, hi)
}

func Test_barBounds(t *testing.T) {
	lo, hi := barBounds(types.Float64Slice{2, 5, 3})
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 5.0, hi)

	lo, hi = barBounds(types.Float64Slice{-2, -5})
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, 0.0, hi)

	lo, hi = barBounds(types.Float64Slice{0, 0})
	assert.Less(t, lo, hi)
}

func Test_returnsColor(t *testing.T) {
	assert.Equal(t, style.Palette.Success, returnsColor(1.5))
	assert.Equal(t, style.Palette.Success, returnsColor(0))
	assert.Equal(t, style.Palette.Danger, returnsColor(-0.01))
}

func Test_Renderer_LengthMismatch(t *testing.T) {
	r := NewRenderer(0, 0)
	assert.Equal(t, 960, r.Width)
	assert.Equal(t, 400, r.Height)

	dates := []types.Time{types.NewTimeFromDate(2024, 1, 2)}

	_, err := r.Price("price/T/1y", 1, dates, types.Float64Slice{1, 2}, nil, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = r.Volume("volume/T/1y", 1, dates, types.Float64Slice{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = r.Returns("returns/T/1y", 1, dates, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = r.Prediction("prediction/T/1y", 1, dates, nil, types.Prediction{})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func Test_Renderer_Price(t *testing.T) {
	r := NewRenderer(640, 320)

	klines := testKLines(60)
	dates := klines.Dates()
	closes := klines.Closes()

	inst, err := r.Price("price/TEST/1y", 1, dates, closes, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, KindPrice, inst.Kind)

	var buf bytes.Buffer
	require.NoError(t, inst.Render(&buf))
	assert.NotZero(t, buf.Len())
}

func Test_Renderer_PriceEmpty(t *testing.T) {
	r := NewRenderer(640, 320)

	inst, err := r.Price("price/TEST/1y", 1, nil, nil, nil, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, inst.Render(&buf))
}

func Test_Renderer_VolumeAndReturns(t *testing.T) {
	r := NewRenderer(640, 320)

	klines := testKLines(30)
	dates := klines.Dates()

	inst, err := r.Volume("volume/TEST/1y", 1, dates, klines.Volumes())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, inst.Render(&buf))

	returns := types.Float64Slice{0}
	for i := 1; i < len(dates); i++ {
		returns.Push(float64(i%5) - 2)
	}

	inst, err = r.Returns("returns/TEST/1y", 2, dates, returns)
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, inst.Render(&buf))
	assert.NotZero(t, buf.Len())
}

func Test_Renderer_Prediction(t *testing.T) {
	r := NewRenderer(640, 320)

	klines := testKLines(60)
	dates := klines.Dates()
	closes := klines.Closes()

	last := dates[len(dates)-1]
	prediction := types.Prediction{}
	for i := 1; i <= 10; i++ {
		prediction.Dates = append(prediction.Dates, last.AddDays(i))
		prediction.Prices.Push(closes.Last() + float64(i))
	}

	inst, err := r.Prediction("prediction/TEST/1y", 1, dates, closes, prediction)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, inst.Render(&buf))
	assert.NotZero(t, buf.Len())
}

func Test_Instance_Release(t *testing.T) {
	r := NewRenderer(640, 320)

	inst, err := r.Price("price/TEST/1y", 1, nil, nil, nil, nil)
	require.NoError(t, err)

	inst.Release()
	inst.Release() // idempotent

	assert.True(t, inst.Released())

	var buf bytes.Buffer
	assert.ErrorIs(t, inst.Render(&buf), ErrReleased)
	assert.ErrorIs(t, inst.RenderSVG(&buf), ErrReleased)
}
