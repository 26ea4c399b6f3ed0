package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/stockboard/pkg/types"
)

var ErrNoData = errors.New("yahoo: no data available")

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// QueryHistory fetches daily bars for the given period. The ticker must
// already be normalized with FormatTicker. When an Indian ticker has no
// history on its exchange, the other exchange is tried once.
func (c *Client) QueryHistory(ctx context.Context, ticker string, period types.Period) (types.KLineWindow, error) {
	klines, err := c.queryChart(ctx, ticker, period)
	if err == nil && len(klines) > 0 {
		return klines, nil
	}

	if alt := alternateExchange(ticker); alt != "" {
		clientLog.Infof("no history for %s, trying %s", ticker, alt)
		if klines, altErr := c.queryChart(ctx, alt, period); altErr == nil && len(klines) > 0 {
			return klines, nil
		}
	}

	if err != nil {
		return nil, err
	}
	return nil, errors.Wrap(ErrNoData, ticker)
}

func (c *Client) queryChart(ctx context.Context, ticker string, period types.Period) (types.KLineWindow, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		c.BaseURL, url.PathEscape(ticker), period)

	var resp chartResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, errors.Errorf("yahoo: api error %s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, errors.Wrap(ErrNoData, ticker)
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	var klines types.KLineWindow
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			// untraded day, leave the gap
			continue
		}

		k := types.KLine{
			Date:  types.Time(time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			k.Open = *quote.Open[i]
		} else {
			k.Open = k.Close
		}
		if i < len(quote.High) && quote.High[i] != nil {
			k.High = *quote.High[i]
		} else {
			k.High = k.Close
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			k.Low = *quote.Low[i]
		} else {
			k.Low = k.Close
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			k.Volume = *quote.Volume[i]
		}

		klines = append(klines, k)
	}

	return klines, nil
}
