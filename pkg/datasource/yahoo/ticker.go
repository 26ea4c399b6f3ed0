package yahoo

import "strings"

var knownUSStocks = map[string]struct{}{
	"AAPL": {}, "MSFT": {}, "GOOGL": {}, "AMZN": {},
	"META": {}, "TSLA": {}, "NVDA": {}, "NFLX": {},
}

// FormatTicker normalizes a user-entered symbol to a Yahoo ticker.
// Indian symbols written as FOO-NSE / FOO-BSE map to FOO.NS / FOO.BO;
// long alphabetic symbols without a suffix default to NSE; symbols that
// already carry an exchange suffix pass through untouched.
func FormatTicker(ticker string) string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if strings.Contains(ticker, ".") {
		return ticker
	}

	if strings.HasSuffix(ticker, "-NSE") {
		return strings.TrimSuffix(ticker, "-NSE") + ".NS"
	}
	if strings.HasSuffix(ticker, "-BSE") {
		return strings.TrimSuffix(ticker, "-BSE") + ".BO"
	}

	if _, ok := knownUSStocks[ticker]; ok {
		return ticker
	}

	alpha := ticker != "" && isAlpha(ticker)
	if alpha && len(ticker) > 5 {
		return ticker + ".NS"
	}

	return ticker
}

// alternateExchange swaps an Indian ticker between NSE and BSE, used when
// one exchange returns no history. Returns "" for non-Indian tickers.
func alternateExchange(ticker string) string {
	switch {
	case strings.HasSuffix(ticker, ".NS"):
		return strings.TrimSuffix(ticker, ".NS") + ".BO"
	case strings.HasSuffix(ticker, ".BO"):
		return strings.TrimSuffix(ticker, ".BO") + ".NS"
	}
	return ""
}

// IsIndianTicker reports whether the normalized ticker trades on NSE or BSE.
func IsIndianTicker(ticker string) bool {
	return strings.HasSuffix(ticker, ".NS") || strings.HasSuffix(ticker, ".BO")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
