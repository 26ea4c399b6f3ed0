package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c9s/stockboard/pkg/chart"
	"github.com/c9s/stockboard/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexPage struct {
	Ticker  string
	Period  string
	Periods []types.Period
	Kinds   []string
}

func (s *Server) handleIndex(c *gin.Context) {
	page := indexPage{
		Ticker:  c.Query("ticker"),
		Period:  c.DefaultQuery("period", types.DefaultPeriod.String()),
		Periods: types.SupportedPeriods,
		Kinds: []string{
			chart.KindPrice,
			chart.KindCandlestick,
			chart.KindVolume,
			chart.KindReturns,
			chart.KindPrediction,
		},
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(c.Writer, page); err != nil {
		serverLog.WithError(err).Error("index template render failed")
	}
}
