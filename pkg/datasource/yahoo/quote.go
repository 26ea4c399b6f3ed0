package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/c9s/stockboard/pkg/types"
)

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				Website             string `json:"website"`
				LongBusinessSummary string `json:"longBusinessSummary"`
				Country             string `json:"country"`
				FullTimeEmployees   int64  `json:"fullTimeEmployees"`
			} `json:"assetProfile"`
			Price *struct {
				ShortName          string   `json:"shortName"`
				ExchangeName       string   `json:"exchangeName"`
				RegularMarketPrice rawValue `json:"regularMarketPrice"`
				MarketCap          rawValue `json:"marketCap"`
			} `json:"price"`
			SummaryDetail *struct {
				PreviousClose    rawValue `json:"previousClose"`
				Open             rawValue `json:"open"`
				DayLow           rawValue `json:"dayLow"`
				DayHigh          rawValue `json:"dayHigh"`
				Volume           rawValue `json:"volume"`
				AverageVolume    rawValue `json:"averageVolume"`
				TrailingPE       rawValue `json:"trailingPE"`
				ForwardPE        rawValue `json:"forwardPE"`
				DividendYield    rawValue `json:"dividendYield"`
				FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
				Beta             rawValue `json:"beta"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				TrailingEps rawValue `json:"trailingEps"`
			} `json:"defaultKeyStatistics"`
			FinancialData *struct {
				CurrentPrice      rawValue `json:"currentPrice"`
				TargetMeanPrice   rawValue `json:"targetMeanPrice"`
				TargetHighPrice   rawValue `json:"targetHighPrice"`
				TargetLowPrice    rawValue `json:"targetLowPrice"`
				RecommendationKey string   `json:"recommendationKey"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

const quoteSummaryModules = "assetProfile,price,summaryDetail,defaultKeyStatistics,financialData"

// QuerySummary fetches the company profile and the quote snapshot in one
// quoteSummary call. The ticker must already be normalized.
func (c *Client) QuerySummary(ctx context.Context, ticker string) (types.CompanyInfo, types.Metrics, error) {
	info := types.CompanyInfo{
		Name:        ticker,
		Sector:      "N/A",
		Industry:    "N/A",
		Website:     "N/A",
		Description: "Information not available",
		Country:     "N/A",
		Exchange:    "N/A",
	}
	metrics := types.Metrics{
		RecommendationKey: "N/A",
		CurrencySymbol:    currencySymbol(ticker),
		IsIndianStock:     IsIndianTicker(ticker),
	}

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.BaseURL, url.PathEscape(ticker), url.QueryEscape(quoteSummaryModules))

	var resp quoteSummaryResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return info, metrics, err
	}

	if resp.QuoteSummary.Error != nil {
		return info, metrics, errors.Errorf("yahoo: api error %s: %s",
			resp.QuoteSummary.Error.Code, resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return info, metrics, errors.Wrap(ErrNoData, ticker)
	}

	result := resp.QuoteSummary.Result[0]

	if p := result.AssetProfile; p != nil {
		setIfNotEmpty(&info.Sector, p.Sector)
		setIfNotEmpty(&info.Industry, p.Industry)
		setIfNotEmpty(&info.Website, p.Website)
		setIfNotEmpty(&info.Description, p.LongBusinessSummary)
		setIfNotEmpty(&info.Country, p.Country)
		info.Employees = p.FullTimeEmployees
	}
	if p := result.Price; p != nil {
		setIfNotEmpty(&info.Name, p.ShortName)
		setIfNotEmpty(&info.Exchange, p.ExchangeName)
		metrics.MarketCap = p.MarketCap.ptr()
		if metrics.CurrentPrice == nil {
			metrics.CurrentPrice = p.RegularMarketPrice.ptr()
		}
	}
	if d := result.SummaryDetail; d != nil {
		metrics.PreviousClose = d.PreviousClose.ptr()
		metrics.Open = d.Open.ptr()
		metrics.DayLow = d.DayLow.ptr()
		metrics.DayHigh = d.DayHigh.ptr()
		metrics.Volume = d.Volume.ptr()
		metrics.AvgVolume = d.AverageVolume.ptr()
		metrics.PERatio = d.TrailingPE.ptr()
		metrics.ForwardPE = d.ForwardPE.ptr()
		metrics.FiftyTwoWeekHigh = d.FiftyTwoWeekHigh.ptr()
		metrics.FiftyTwoWeekLow = d.FiftyTwoWeekLow.ptr()
		metrics.Beta = d.Beta.ptr()

		if y := d.DividendYield.ptr(); y != nil {
			pct := *y * 100
			metrics.DividendYield = &pct
		}
	}
	if s := result.DefaultKeyStatistics; s != nil {
		metrics.EPS = s.TrailingEps.ptr()
	}
	if f := result.FinancialData; f != nil {
		if p := f.CurrentPrice.ptr(); p != nil {
			metrics.CurrentPrice = p
		}
		metrics.TargetMeanPrice = f.TargetMeanPrice.ptr()
		metrics.TargetHighPrice = f.TargetHighPrice.ptr()
		metrics.TargetLowPrice = f.TargetLowPrice.ptr()
		setIfNotEmpty(&metrics.RecommendationKey, f.RecommendationKey)
	}

	return info, metrics, nil
}

func currencySymbol(ticker string) string {
	if IsIndianTicker(ticker) {
		return "₹"
	}
	return "$"
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
