package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/stockboard/pkg/types"
)

func Test_WriteCSV(t *testing.T) {
	klines := types.KLineWindow{
		{
			Date:   types.NewTimeFromDate(2024, time.March, 1),
			Open:   100.123,
			High:   105.5,
			Low:    99,
			Close:  104.999,
			Volume: 1234567,
		},
		{
			Date:   types.NewTimeFromDate(2024, time.March, 4),
			Open:   104.5,
			High:   106,
			Low:    103,
			Close:  105,
			Volume: 7654321,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, klines))

	expected := "Date,Open,High,Low,Close,Volume\n" +
		"2024-03-01,100.12,105.50,99.00,105.00,1234567\n" +
		"2024-03-04,104.50,106.00,103.00,105.00,7654321\n"
	assert.Equal(t, expected, buf.String())
}

func Test_WriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Open,High,Low,Close,Volume\n", buf.String())
}
