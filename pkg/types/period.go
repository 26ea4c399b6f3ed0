package types

import "github.com/pkg/errors"

// Period is a history range accepted by the data API, e.g. "6mo", "1y".
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	Period10Y Period = "10y"
	PeriodMax Period = "max"
)

const DefaultPeriod = Period1Y

var SupportedPeriods = []Period{
	Period1Mo, Period3Mo, Period6Mo, Period1Y, Period2Y, Period5Y, Period10Y, PeriodMax,
}

var ErrInvalidPeriod = errors.New("invalid period")

func (p Period) String() string {
	return string(p)
}

func (p Period) Validate() error {
	for _, s := range SupportedPeriods {
		if p == s {
			return nil
		}
	}
	return errors.Wrap(ErrInvalidPeriod, string(p))
}

// ParsePeriod returns the period for s, or the default period when s is empty.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}

	p := Period(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}
