package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/stockboard/pkg/datasource/yahoo"
	"github.com/c9s/stockboard/pkg/format"
	"github.com/c9s/stockboard/pkg/indicator"
	"github.com/c9s/stockboard/pkg/predict"
	"github.com/c9s/stockboard/pkg/types"
)

var ErrEmptyTicker = errors.New("no ticker symbol provided")

var serviceLog = log.WithField("service", "stock")

// cacheEntry wraps a report with the cache TTL.
type cacheEntry struct {
	Report *types.StockReport `json:"report"`
	TTL    time.Duration      `json:"-"`
}

func (e cacheEntry) Expiration() time.Duration {
	return e.TTL
}

// StockService assembles full stock reports: history, indicators, summary
// stats, company profile, quote metrics, forecast and recommendation.
type StockService struct {
	Source   *yahoo.Client
	Cache    PersistenceService
	CacheTTL time.Duration

	token uint64
}

func NewStockService(source *yahoo.Client, cache PersistenceService, ttl time.Duration) *StockService {
	return &StockService{
		Source:   source,
		Cache:    cache,
		CacheTTL: ttl,
	}
}

// NextToken issues a monotonically increasing query token. Tokens are
// assigned at request start so out-of-order completions of overlapping
// queries can be detected downstream and discarded.
func (s *StockService) NextToken() uint64 {
	return atomic.AddUint64(&s.token, 1)
}

// QueryHistory fetches just the raw history window, used by the CSV export.
func (s *StockService) QueryHistory(ctx context.Context, ticker string, period types.Period) (types.KLineWindow, error) {
	if ticker == "" {
		return nil, ErrEmptyTicker
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	formatted := yahoo.FormatTicker(ticker)
	klines, err := s.Source.QueryHistory(ctx, formatted, period)
	return klines, errors.Wrapf(err, "failed to retrieve data for %s", ticker)
}

// Query builds the full report for one ticker and period. Results are served
// from the cache within the TTL.
func (s *StockService) Query(ctx context.Context, ticker string, period types.Period) (*types.StockReport, error) {
	if ticker == "" {
		return nil, ErrEmptyTicker
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	formatted := yahoo.FormatTicker(ticker)

	var store Store
	if s.Cache != nil {
		store = s.Cache.NewStore("report", formatted, period.String())

		var cached cacheEntry
		if err := store.Load(&cached); err == nil && cached.Report != nil {
			serviceLog.Debugf("cache hit for %s %s", formatted, period)
			return cached.Report, nil
		}
	}

	var klines types.KLineWindow
	var info types.CompanyInfo
	var metrics types.Metrics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		klines, err = s.Source.QueryHistory(gctx, formatted, period)
		return errors.Wrapf(err, "failed to retrieve data for %s", ticker)
	})
	g.Go(func() (err error) {
		info, metrics, err = s.Source.QuerySummary(gctx, formatted)
		if err != nil {
			// the dashboard can live without the profile; history cannot
			serviceLog.WithError(err).Warnf("summary fetch failed for %s", formatted)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(klines) == 0 {
		return nil, errors.Errorf("no data available for ticker %s", ticker)
	}

	report := &types.StockReport{
		Success: true,
		Ticker:  formatted,
		Period:  period,
		Info:    info,
		Metrics: metrics,
	}
	report.Metrics.MarketCapFormatted = format.CompactCurrency(metrics.CurrencySymbol, metrics.MarketCap)
	report.Data = buildSeriesData(klines)

	trend := indicator.AnalyzeTrend(klines.Closes())
	prediction, err := predict.Forecast(klines, predict.DefaultHorizon)
	if err != nil {
		serviceLog.WithError(err).Warnf("forecast unavailable for %s", formatted)
		prediction = types.Prediction{}
	}
	report.Recommendation = BuildRecommendation(trend, klines.Closes(), report.Metrics, prediction)

	if store != nil {
		if err := store.Save(cacheEntry{Report: report, TTL: s.CacheTTL}); err != nil {
			serviceLog.WithError(err).Warn("report cache save failed")
		}
	}

	return report, nil
}

func buildSeriesData(klines types.KLineWindow) types.SeriesData {
	closes := klines.Closes()
	returns := indicator.DailyReturns(closes)

	data := types.SeriesData{
		Dates:        klines.Dates(),
		Prices:       roundAll(closes),
		Volumes:      klines.Volumes(),
		SMA20:        roundAll(indicator.SMA(closes, 20)),
		SMA50:        roundAll(indicator.SMA(closes, 50)),
		DailyReturns: roundAll(returns),
		OHLC:         roundOHLC(klines),
	}

	data.Stats = types.Stats{
		AvgPrice:           round2(closes.Mean()),
		MinPrice:           round2(closes.Min()),
		MaxPrice:           round2(closes.Max()),
		StartPrice:         round2(closes[0]),
		EndPrice:           round2(closes.Last()),
		PriceChange:        round2(closes.Last() - closes[0]),
		PriceChangePercent: round2((closes.Last()/closes[0] - 1) * 100),
		Volatility:         round2(indicator.Volatility(returns)),
	}
	return data
}

func roundAll(values types.Float64Slice) types.Float64Slice {
	out := make(types.Float64Slice, len(values))
	for i, v := range values {
		out[i] = round2(v)
	}
	return out
}

func roundOHLC(klines types.KLineWindow) types.KLineWindow {
	out := make(types.KLineWindow, len(klines))
	for i, k := range klines {
		k.Open = round2(k.Open)
		k.High = round2(k.High)
		k.Low = round2(k.Low)
		k.Close = round2(k.Close)
		out[i] = k
	}
	return out
}
