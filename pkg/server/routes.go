package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/stockboard/pkg/chart"
	"github.com/c9s/stockboard/pkg/config"
	"github.com/c9s/stockboard/pkg/service"
	"github.com/c9s/stockboard/pkg/types"
)

var serverLog = log.WithField("component", "server")

// Server wires the stock service and the chart renderer into the HTTP API.
type Server struct {
	Config   *config.Config
	Service  *service.StockService
	Renderer *chart.Renderer
	Registry *chart.Registry
}

func New(cfg *config.Config, stockService *service.StockService) *Server {
	return &Server{
		Config:   cfg,
		Service:  stockService,
		Renderer: chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height),
		Registry: chart.NewRegistry(),
	}
}

func (s *Server) Routes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.Server.AllowedOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowMethods:     []string{"GET"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", s.handleIndex)
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/api/stock_data", s.handleStockData)
	r.GET("/api/download_csv", s.handleDownloadCSV)
	r.GET("/api/charts/:kind", s.handleChart)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Config.Server.Bind,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			serverLog.WithError(err).Error("server shutdown error")
		}
	}()

	serverLog.Infof("listening on %s", s.Config.Server.Bind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// parseQuery validates the common ticker/period query arguments.
// An empty ticker is rejected before any network call happens.
func parseQuery(c *gin.Context) (string, types.Period, bool) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ticker symbol provided"})
		return "", "", false
	}

	period, err := types.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}

	return ticker, period, true
}

func (s *Server) handleStockData(c *gin.Context) {
	ticker, period, ok := parseQuery(c)
	if !ok {
		return
	}

	report, err := s.Service.Query(c.Request.Context(), ticker, period)
	if err != nil {
		serverLog.WithError(err).Errorf("stock data request failed for %s", ticker)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleDownloadCSV(c *gin.Context) {
	ticker, period, ok := parseQuery(c)
	if !ok {
		return
	}

	klines, err := s.Service.QueryHistory(c.Request.Context(), ticker, period)
	if err != nil {
		serverLog.WithError(err).Errorf("csv request failed for %s", ticker)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, klines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("%s_stock_data.csv", ticker)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// handleChart renders one dashboard pane as PNG. The render target is the
// pane itself, so the registry never holds more than one instance per pane
// no matter how many tickers get queried. The query token is issued before
// the fetch; when overlapping requests for the same pane finish out of
// order, the stale build is never installed, but its bytes are already
// rendered and still answer the request that asked for them. Rendering
// happens before Replace: once an instance is installed a newer request may
// release it at any moment, so a replaced instance is never rendered again.
func (s *Server) handleChart(c *gin.Context) {
	kind := c.Param("kind")
	ticker, period, ok := parseQuery(c)
	if !ok {
		return
	}

	token := s.Service.NextToken()

	report, err := s.Service.Query(c.Request.Context(), ticker, period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inst, err := s.buildChart(kind, kind, token, report)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := inst.Render(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := s.Registry.Replace(inst); err != nil && !errors.Is(err, chart.ErrStaleInstance) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) buildChart(kind, target string, token uint64, report *types.StockReport) (*chart.Instance, error) {
	data := report.Data
	switch kind {
	case chart.KindPrice:
		return s.Renderer.Price(target, token, data.Dates, data.Prices, data.SMA20, data.SMA50)
	case chart.KindCandlestick:
		return s.Renderer.Candlestick(target, token, data.OHLC)
	case chart.KindVolume:
		return s.Renderer.Volume(target, token, data.Dates, data.Volumes)
	case chart.KindReturns:
		return s.Renderer.Returns(target, token, data.Dates, data.DailyReturns)
	case chart.KindPrediction:
		return s.Renderer.Prediction(target, token, data.Dates, data.Prices, report.Recommendation.Prediction)
	}
	return nil, errors.Errorf("unknown chart kind %q", kind)
}
