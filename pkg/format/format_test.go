package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Compact(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1500, "1.50K"},
		{2500000, "2.50M"},
		{999, "999.00"},
		{3.2e12, "3.20T"},
		{1.5e9, "1.50B"},
		{-2500000, "-2.50M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Compact(tt.value))
	}
}

func Test_Currency(t *testing.T) {
	v := 1234.5
	assert.Equal(t, "$1,234.50", Currency("$", &v))
	assert.Equal(t, "N/A", Currency("$", nil))

	nan := math.NaN()
	assert.Equal(t, "N/A", Currency("$", &nan))
}

func Test_CompactCurrency(t *testing.T) {
	v := 2.85e12
	assert.Equal(t, "$2.85T", CompactCurrency("$", &v))
	assert.Equal(t, "N/A", CompactCurrency("$", nil))
}

func Test_Percent(t *testing.T) {
	assert.Equal(t, "+3.25%", Percent(3.25))
	assert.Equal(t, "-0.50%", Percent(-0.5))
}

func Test_Float(t *testing.T) {
	v := 12.345
	assert.Equal(t, "12.35", Float(&v))
	assert.Equal(t, "N/A", Float(nil))
}
