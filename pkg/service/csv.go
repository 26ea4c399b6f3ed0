package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/c9s/stockboard/pkg/types"
)

var csvHeader = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// WriteCSV streams the history window as CSV, one row per bar, dates in
// YYYY-MM-DD.
func WriteCSV(w io.Writer, klines types.KLineWindow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "csv header write failed")
	}

	for _, k := range klines {
		record := []string{
			k.Date.String(),
			formatFloat(k.Open),
			formatFloat(k.High),
			formatFloat(k.Low),
			formatFloat(k.Close),
			strconv.FormatFloat(k.Volume, 'f', 0, 64),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "csv row write failed")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "csv flush failed")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
