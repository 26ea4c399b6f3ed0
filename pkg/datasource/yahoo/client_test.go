package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/stockboard/pkg/types"
)

func chartBody(ticker string, start time.Time, closes []float64) string {
	var timestamps, closeVals, openVals, highVals, lowVals, volumeVals []string
	for i, c := range closes {
		timestamps = append(timestamps, fmt.Sprintf("%d", start.AddDate(0, 0, i).Unix()))
		closeVals = append(closeVals, fmt.Sprintf("%.2f", c))
		openVals = append(openVals, fmt.Sprintf("%.2f", c-0.5))
		highVals = append(highVals, fmt.Sprintf("%.2f", c+1))
		lowVals = append(lowVals, fmt.Sprintf("%.2f", c-1))
		volumeVals = append(volumeVals, "1000")
	}

	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"open":[%s],"high":[%s],"low":[%s],"close":[%s],"volume":[%s]}]}}],"error":null}}`,
		strings.Join(timestamps, ","),
		strings.Join(openVals, ","),
		strings.Join(highVals, ","),
		strings.Join(lowVals, ","),
		strings.Join(closeVals, ","),
		strings.Join(volumeVals, ","))
}

const emptyChartBody = `{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[]}}],"error":null}}`

func Test_QueryHistory(t *testing.T) {
	start := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "1y", r.URL.Query().Get("range"))

		fmt.Fprint(w, chartBody("AAPL", start, []float64{100, 101, 102}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	klines, err := client.QueryHistory(context.Background(), "AAPL", types.Period1Y)
	require.NoError(t, err)
	require.Len(t, klines, 3)

	assert.Equal(t, "2024-03-01", klines[0].Date.String())
	assert.Equal(t, 100.0, klines[0].Close)
	assert.Equal(t, 99.5, klines[0].Open)
	assert.Equal(t, 101.0, klines[0].High)
	assert.Equal(t, 99.0, klines[0].Low)
	assert.Equal(t, 1000.0, klines[0].Volume)
}

func Test_QueryHistory_NullCloseSkipped(t *testing.T) {
	body := `{"chart":{"result":[{"timestamp":[1709280000,1709366400],"indicators":{"quote":[{"open":[100,null],"high":[101,null],"low":[99,null],"close":[100.5,null],"volume":[1000,null]}]}}],"error":null}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	klines, err := client.QueryHistory(context.Background(), "AAPL", types.Period1Mo)
	require.NoError(t, err)

	// the untraded day is absent, not zero-filled
	require.Len(t, klines, 1)
	assert.Equal(t, 100.5, klines[0].Close)
}

func Test_QueryHistory_AlternateExchange(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var nseCalls, bseCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v8/finance/chart/RELIANCE.NS":
			nseCalls++
			fmt.Fprint(w, emptyChartBody)
		case "/v8/finance/chart/RELIANCE.BO":
			bseCalls++
			fmt.Fprint(w, chartBody("RELIANCE.BO", start, []float64{2900}))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	klines, err := client.QueryHistory(context.Background(), "RELIANCE.NS", types.Period1Y)
	require.NoError(t, err)

	assert.Len(t, klines, 1)
	assert.Equal(t, 1, nseCalls)
	assert.Equal(t, 1, bseCalls)
}

func Test_QueryHistory_NotFoundIsPermanent(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.QueryHistory(context.Background(), "NOPE", types.Period1Y)
	require.Error(t, err)

	// 404 must not be retried
	assert.Equal(t, 1, calls)
}

func Test_QuerySummary(t *testing.T) {
	body := `{"quoteSummary":{"result":[{
		"assetProfile":{"sector":"Technology","industry":"Consumer Electronics","website":"https://www.apple.com","longBusinessSummary":"Designs smartphones.","country":"United States","fullTimeEmployees":161000},
		"price":{"shortName":"Apple Inc.","exchangeName":"NasdaqGS","regularMarketPrice":{"raw":190.5},"marketCap":{"raw":2950000000000}},
		"summaryDetail":{"previousClose":{"raw":189.0},"open":{"raw":189.5},"dayLow":{"raw":188.0},"dayHigh":{"raw":191.0},"volume":{"raw":50000000},"averageVolume":{"raw":60000000},"trailingPE":{"raw":31.2},"forwardPE":{"raw":28.4},"dividendYield":{"raw":0.0052},"fiftyTwoWeekHigh":{"raw":199.6},"fiftyTwoWeekLow":{"raw":164.1},"beta":{"raw":1.29}},
		"defaultKeyStatistics":{"trailingEps":{"raw":6.11}},
		"financialData":{"currentPrice":{"raw":190.75},"targetMeanPrice":{"raw":205.0},"targetHighPrice":{"raw":250.0},"targetLowPrice":{"raw":160.0},"recommendationKey":"buy"}
	}],"error":null}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v10/finance/quoteSummary/AAPL", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("modules"), "assetProfile")

		fmt.Fprint(w, body)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	info, metrics, err := client.QuerySummary(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "Apple Inc.", info.Name)
	assert.Equal(t, "Technology", info.Sector)
	assert.Equal(t, "NasdaqGS", info.Exchange)
	assert.Equal(t, int64(161000), info.Employees)

	require.NotNil(t, metrics.CurrentPrice)
	assert.Equal(t, 190.75, *metrics.CurrentPrice) // financialData wins over price

	require.NotNil(t, metrics.DividendYield)
	assert.InDelta(t, 0.52, *metrics.DividendYield, 0.001)

	require.NotNil(t, metrics.TargetMeanPrice)
	assert.Equal(t, 205.0, *metrics.TargetMeanPrice)
	assert.Equal(t, "buy", metrics.RecommendationKey)
	assert.Equal(t, "$", metrics.CurrencySymbol)
	assert.False(t, metrics.IsIndianStock)
}

func Test_QuerySummary_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[],"error":null}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	info, metrics, err := client.QuerySummary(context.Background(), "TCS.NS")
	require.Error(t, err)

	// defaults survive the failure so the caller can degrade gracefully
	assert.Equal(t, "TCS.NS", info.Name)
	assert.Equal(t, "N/A", info.Sector)
	assert.Equal(t, "₹", metrics.CurrencySymbol)
	assert.True(t, metrics.IsIndianStock)
}
