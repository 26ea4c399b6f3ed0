package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ClassifyRecommendation(t *testing.T) {
	tests := []struct {
		text string
		want Badge
	}{
		{"Strong Buy", Badge{Class: "success", Icon: "thumbs-up"}},
		{"Buy", Badge{Class: "success", Icon: "check-circle"}},
		{"Moderate Buy", Badge{Class: "success", Icon: "check-circle"}},
		{"Sell now", Badge{Class: "danger", Icon: "times-circle"}},
		{"STRONG SELL", Badge{Class: "danger", Icon: "thumbs-down"}},
		{"Hold steady", Badge{Class: "info", Icon: "balance-scale"}},
		{"Unclear", Badge{Class: "secondary", Icon: "question-circle"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRecommendation(tt.text), "text %q", tt.text)
	}
}

func Test_ClassifyTrend(t *testing.T) {
	assert.Equal(t, "success", ClassifyTrend("Strong Uptrend"))
	assert.Equal(t, "success", ClassifyTrend("bullish"))
	assert.Equal(t, "danger", ClassifyTrend("Downtrend (Oversold)"))
	assert.Equal(t, "danger", ClassifyTrend("Bearish"))
	assert.Equal(t, "info", ClassifyTrend("Sideways"))
	assert.Equal(t, "info", ClassifyTrend(""))
}
