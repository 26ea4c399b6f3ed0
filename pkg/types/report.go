package types

// CompanyInfo is the company profile section of a stock report.
type CompanyInfo struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Employees   int64  `json:"employees"`
	Exchange    string `json:"exchange"`
}

// Metrics holds the quote and valuation snapshot. Optional fields are
// pointers; the formatting layer renders nil as "N/A".
type Metrics struct {
	CurrentPrice      *float64 `json:"current_price"`
	PreviousClose     *float64 `json:"previous_close"`
	Open              *float64 `json:"open"`
	DayLow            *float64 `json:"day_low"`
	DayHigh           *float64 `json:"day_high"`
	MarketCap         *float64 `json:"market_cap"`
	Volume            *float64 `json:"volume"`
	AvgVolume         *float64 `json:"avg_volume"`
	PERatio           *float64 `json:"pe_ratio"`
	EPS               *float64 `json:"eps"`
	ForwardPE         *float64 `json:"forward_pe"`
	DividendYield     *float64 `json:"dividend_yield"`
	FiftyTwoWeekHigh  *float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow   *float64 `json:"fifty_two_week_low"`
	Beta              *float64 `json:"beta"`
	TargetMeanPrice   *float64 `json:"target_mean_price"`
	TargetHighPrice   *float64 `json:"target_high_price"`
	TargetLowPrice    *float64 `json:"target_low_price"`
	RecommendationKey string   `json:"recommendation_key"`
	CurrencySymbol    string   `json:"currency_symbol"`
	IsIndianStock     bool     `json:"is_indian_stock"`

	MarketCapFormatted string `json:"market_cap_formatted"`
}

// Stats summarizes the displayed history window.
type Stats struct {
	AvgPrice           float64 `json:"avg_price"`
	MinPrice           float64 `json:"min_price"`
	MaxPrice           float64 `json:"max_price"`
	StartPrice         float64 `json:"start_price"`
	EndPrice           float64 `json:"end_price"`
	PriceChange        float64 `json:"price_change"`
	PriceChangePercent float64 `json:"price_change_percent"`
	Volatility         float64 `json:"volatility"`
}

// SeriesData carries the parallel arrays the chart renderers consume.
// All slices are the same length as Dates; SMA slots before the window
// fills are zero.
type SeriesData struct {
	Dates        []Time       `json:"dates"`
	Prices       Float64Slice `json:"prices"`
	Volumes      Float64Slice `json:"volumes"`
	SMA20        Float64Slice `json:"sma20"`
	SMA50        Float64Slice `json:"sma50"`
	DailyReturns Float64Slice `json:"daily_returns"`
	OHLC         KLineWindow  `json:"ohlc"`
	Stats        Stats        `json:"stats"`
}

// Prediction is a forward-only forecast. Dates are strictly after the last
// historical date and never overlap the history.
type Prediction struct {
	Dates  []Time       `json:"dates"`
	Prices Float64Slice `json:"prices"`
}

// Recommendation is the generated buy/hold/sell call with its inputs.
type Recommendation struct {
	Recommendation        string     `json:"recommendation"`
	Explanation           string     `json:"explanation"`
	Score                 int        `json:"score"`
	Trend                 string     `json:"trend"`
	RSI                   float64    `json:"rsi"`
	AnalystRecommendation string     `json:"analyst_recommendation"`
	TargetMeanPrice       *float64   `json:"target_mean_price"`
	TargetPotential       float64    `json:"target_potential"`
	PredictedPrice        float64    `json:"predicted_price"`
	PredictedChange       float64    `json:"predicted_change"`
	Prediction            Prediction `json:"prediction"`
}

// StockReport is the full /api/stock_data payload.
type StockReport struct {
	Success        bool           `json:"success"`
	Ticker         string         `json:"ticker"`
	Period         Period         `json:"period"`
	Data           SeriesData     `json:"data"`
	Info           CompanyInfo    `json:"info"`
	Metrics        Metrics        `json:"metrics"`
	Recommendation Recommendation `json:"recommendation"`
}
