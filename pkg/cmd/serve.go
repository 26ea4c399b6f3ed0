package cmd

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/stockboard/pkg/config"
	"github.com/c9s/stockboard/pkg/datasource/yahoo"
	"github.com/c9s/stockboard/pkg/server"
	"github.com/c9s/stockboard/pkg/service"
	"github.com/c9s/stockboard/pkg/types"
)

func init() {
	ServeCmd.Flags().String("bind", "", "server bind address, overrides the config file")
	RootCmd.AddCommand(ServeCmd)
}

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the dashboard HTTP server",
	RunE:  serve,
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return err
	}

	if bind, err := cmd.Flags().GetString("bind"); err == nil && bind != "" {
		cfg.Server.Bind = bind
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source := yahoo.NewClient(cfg.DataSource.BaseURL)
	stockService := service.NewStockService(source, cfg.BuildCache(), cfg.Cache.TTL)

	if len(cfg.Watchlist.Symbols) > 0 {
		period, err := types.ParsePeriod(cfg.Watchlist.Period)
		if err != nil {
			return err
		}

		warmer := service.NewWarmer(stockService, cfg.Watchlist.Symbols, period, cfg.Watchlist.Schedule)
		if err := warmer.Start(ctx); err != nil {
			return err
		}
		defer warmer.Stop()
	}

	log.Infof("starting stockboard server on %s", cfg.Server.Bind)
	return server.New(cfg, stockService).Run(ctx)
}
