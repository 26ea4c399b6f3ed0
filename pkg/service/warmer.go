package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/stockboard/pkg/types"
)

var warmerLog = log.WithField("service", "warmer")

// Warmer refreshes the report cache for a fixed watchlist on a cron
// schedule, so the dashboard serves watched symbols without a cold fetch.
type Warmer struct {
	service  *StockService
	symbols  []string
	period   types.Period
	schedule string

	cron *cron.Cron
}

func NewWarmer(service *StockService, symbols []string, period types.Period, schedule string) *Warmer {
	if schedule == "" {
		schedule = "@every 15m"
	}
	return &Warmer{
		service:  service,
		symbols:  symbols,
		period:   period,
		schedule: schedule,
		cron:     cron.New(),
	}
}

func (w *Warmer) Start(ctx context.Context) error {
	if len(w.symbols) == 0 {
		return nil
	}

	_, err := w.cron.AddFunc(w.schedule, func() {
		w.refresh(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	warmerLog.Infof("cache warmer started: %d symbols, schedule %q", len(w.symbols), w.schedule)

	// warm once at startup so the first page load is already hot
	go w.refresh(ctx)
	return nil
}

func (w *Warmer) Stop() {
	<-w.cron.Stop().Done()
}

func (w *Warmer) refresh(ctx context.Context) {
	for _, symbol := range w.symbols {
		refreshCtx, cancel := context.WithTimeout(ctx, time.Minute)
		_, err := w.service.Query(refreshCtx, symbol, w.period)
		cancel()

		if err != nil {
			warmerLog.WithError(err).Warnf("warm query failed for %s", symbol)
		}
	}
}
