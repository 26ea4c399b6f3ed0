package style

import "strings"

// Badge is a display classification: a bootstrap-style context class plus a
// font-awesome icon name.
type Badge struct {
	Class string `json:"class"`
	Icon  string `json:"icon"`
}

// ClassifyRecommendation maps a free-text recommendation to a badge by
// case-insensitive substring match. "strong buy"/"strong sell" must be
// matched before the bare "buy"/"sell" substrings.
func ClassifyRecommendation(recommendation string) Badge {
	s := strings.ToLower(recommendation)

	switch {
	case strings.Contains(s, "strong buy"):
		return Badge{Class: "success", Icon: "thumbs-up"}
	case strings.Contains(s, "strong sell"):
		return Badge{Class: "danger", Icon: "thumbs-down"}
	case strings.Contains(s, "buy"):
		return Badge{Class: "success", Icon: "check-circle"}
	case strings.Contains(s, "sell"):
		return Badge{Class: "danger", Icon: "times-circle"}
	case strings.Contains(s, "hold"):
		return Badge{Class: "info", Icon: "balance-scale"}
	}

	return Badge{Class: "secondary", Icon: "question-circle"}
}

// ClassifyTrend maps a trend label to a context class. Anything that is not
// clearly directional gets the neutral default.
func ClassifyTrend(trend string) string {
	s := strings.ToLower(trend)

	switch {
	case strings.Contains(s, "uptrend"), strings.Contains(s, "bullish"):
		return "success"
	case strings.Contains(s, "downtrend"), strings.Contains(s, "bearish"):
		return "danger"
	}

	return "info"
}
