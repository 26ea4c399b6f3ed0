package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/stockboard/pkg/chart"
	"github.com/c9s/stockboard/pkg/config"
	"github.com/c9s/stockboard/pkg/datasource/yahoo"
	"github.com/c9s/stockboard/pkg/service"
	"github.com/c9s/stockboard/pkg/types"
)

func init() {
	ChartCmd.Flags().String("ticker", "", "the ticker symbol to chart, e.g. AAPL")
	ChartCmd.Flags().String("period", types.DefaultPeriod.String(), "history period")
	ChartCmd.Flags().String("output", ".", "directory for the rendered PNG files")
	RootCmd.AddCommand(ChartCmd)
}

var ChartCmd = &cobra.Command{
	Use:   "chart --ticker=[symbol] [--period=[period]] [--output=[dir]]",
	Short: "render the dashboard charts to PNG files",
	RunE:  renderCharts,
}

func renderCharts(cmd *cobra.Command, args []string) error {
	ticker, err := cmd.Flags().GetString("ticker")
	if err != nil {
		return err
	}
	if ticker == "" {
		return fmt.Errorf("--ticker is required")
	}

	rawPeriod, err := cmd.Flags().GetString("period")
	if err != nil {
		return err
	}
	period, err := types.ParsePeriod(rawPeriod)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return err
	}

	source := yahoo.NewClient(cfg.DataSource.BaseURL)
	stockService := service.NewStockService(source, service.NewMemoryService(), cfg.Cache.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := stockService.Query(ctx, ticker, period)
	if err != nil {
		return err
	}

	renderer := chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height)
	registry := chart.NewRegistry()
	defer registry.ReleaseAll()

	data := report.Data
	builders := []struct {
		kind  string
		build func(target string, token uint64) (*chart.Instance, error)
	}{
		{chart.KindPrice, func(t string, tok uint64) (*chart.Instance, error) {
			return renderer.Price(t, tok, data.Dates, data.Prices, data.SMA20, data.SMA50)
		}},
		{chart.KindCandlestick, func(t string, tok uint64) (*chart.Instance, error) {
			return renderer.Candlestick(t, tok, data.OHLC)
		}},
		{chart.KindVolume, func(t string, tok uint64) (*chart.Instance, error) {
			return renderer.Volume(t, tok, data.Dates, data.Volumes)
		}},
		{chart.KindReturns, func(t string, tok uint64) (*chart.Instance, error) {
			return renderer.Returns(t, tok, data.Dates, data.DailyReturns)
		}},
		{chart.KindPrediction, func(t string, tok uint64) (*chart.Instance, error) {
			return renderer.Prediction(t, tok, data.Dates, data.Prices, report.Recommendation.Prediction)
		}},
	}

	for i, b := range builders {
		inst, err := b.build(b.kind, uint64(i+1))
		if err != nil {
			return err
		}
		if err := registry.Replace(inst); err != nil {
			return err
		}

		fileName := filepath.Join(output, fmt.Sprintf("%s_%s_%s.png", report.Ticker, period, b.kind))
		f, err := os.Create(fileName)
		if err != nil {
			return err
		}
		if err := inst.Render(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		log.Infof("wrote %s", fileName)
	}

	return nil
}
