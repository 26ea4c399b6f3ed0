package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/stockboard/pkg/config"
	"github.com/c9s/stockboard/pkg/datasource/yahoo"
	"github.com/c9s/stockboard/pkg/format"
	"github.com/c9s/stockboard/pkg/service"
	"github.com/c9s/stockboard/pkg/style"
	"github.com/c9s/stockboard/pkg/types"
)

func init() {
	AnalyzeCmd.Flags().String("ticker", "", "the ticker symbol to analyze, e.g. AAPL")
	AnalyzeCmd.Flags().String("period", types.DefaultPeriod.String(), "history period, one of 1mo 3mo 6mo 1y 2y 5y 10y max")
	RootCmd.AddCommand(AnalyzeCmd)
}

var AnalyzeCmd = &cobra.Command{
	Use:   "analyze --ticker=[symbol] [--period=[period]]",
	Short: "print a one-shot analysis for a ticker",
	RunE:  analyze,
}

func analyze(cmd *cobra.Command, args []string) error {
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

	printReport(report)
	return nil
}

func printReport(report *types.StockReport) {
	symbol := report.Metrics.CurrencySymbol

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.SetTitle(fmt.Sprintf("%s (%s, %s)", report.Info.Name, report.Ticker, report.Period))
	t.AppendRows([]table.Row{
		{"Current Price", format.Currency(symbol, report.Metrics.CurrentPrice)},
		{"Market Cap", report.Metrics.MarketCapFormatted},
		{"P/E Ratio", format.Float(report.Metrics.PERatio)},
		{"EPS", format.Float(report.Metrics.EPS)},
		{"52w High", format.Currency(symbol, report.Metrics.FiftyTwoWeekHigh)},
		{"52w Low", format.Currency(symbol, report.Metrics.FiftyTwoWeekLow)},
		{"Avg Price", fmt.Sprintf("%.2f", report.Data.Stats.AvgPrice)},
		{"Change", format.Percent(report.Data.Stats.PriceChangePercent)},
		{"Volatility", fmt.Sprintf("%.2f", report.Data.Stats.Volatility)},
		{"RSI (14)", fmt.Sprintf("%.2f", report.Recommendation.RSI)},
		{"Trend", report.Recommendation.Trend},
	})
	t.Render()

	rec := report.Recommendation
	printer := recommendationPrinter(rec.Recommendation)
	printer("\n%s (score %d)\n", rec.Recommendation, rec.Score)
	fmt.Println(rec.Explanation)
	if len(rec.Prediction.Prices) > 0 {
		fmt.Printf("30-day forecast: %s%.2f (%s)\n",
			symbol, rec.PredictedPrice, format.Percent(rec.PredictedChange))
	}
}

func recommendationPrinter(recommendation string) func(string, ...interface{}) {
	switch style.ClassifyRecommendation(recommendation).Class {
	case "success":
		return func(f string, a ...interface{}) { color.Green(f, a...) }
	case "danger":
		return func(f string, a ...interface{}) { color.Red(f, a...) }
	case "info":
		return func(f string, a ...interface{}) { color.Cyan(f, a...) }
	}
	return func(f string, a ...interface{}) { color.White(f, a...) }
}
