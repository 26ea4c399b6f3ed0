package types

// KLine is one daily OHLCV bar.
//
// The renderer assumes low <= min(open, close) and high >= max(open, close)
// but does not validate it; bad source data draws a bad candle, nothing more.
type KLine struct {
	Date   Time    `json:"x"`
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"-"`
}

// Bullish returns true when the bar closed at or above its open.
// A doji (open == close) counts as bullish.
func (k KLine) Bullish() bool {
	return k.Open <= k.Close
}

// KLineWindow is an ascending-date sequence of bars. Missing days are simply
// absent, no gap filling happens anywhere downstream.
type KLineWindow []KLine

func (w KLineWindow) Closes() (values Float64Slice) {
	for _, k := range w {
		values.Push(k.Close)
	}
	return values
}

func (w KLineWindow) Opens() (values Float64Slice) {
	for _, k := range w {
		values.Push(k.Open)
	}
	return values
}

func (w KLineWindow) Highs() (values Float64Slice) {
	for _, k := range w {
		values.Push(k.High)
	}
	return values
}

func (w KLineWindow) Lows() (values Float64Slice) {
	for _, k := range w {
		values.Push(k.Low)
	}
	return values
}

func (w KLineWindow) Volumes() (values Float64Slice) {
	for _, k := range w {
		values.Push(k.Volume)
	}
	return values
}

func (w KLineWindow) Dates() (dates []Time) {
	for _, k := range w {
		dates = append(dates, k.Date)
	}
	return dates
}

func (w KLineWindow) First() KLine {
	return w[0]
}

func (w KLineWindow) Last() KLine {
	return w[len(w)-1]
}

func (w KLineWindow) Tail(size int) KLineWindow {
	if len(w) <= size {
		return w
	}
	return w[len(w)-size:]
}
