package types

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for dates in API payloads and CSV exports.
const DateFormat = "2006-01-02"

// Time is a date-granularity timestamp. It marshals to "YYYY-MM-DD".
type Time time.Time

func NewTimeFromDate(year int, month time.Month, day int) Time {
	return Time(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) String() string {
	return time.Time(t).Format(DateFormat)
}

func (t Time) Before(t2 Time) bool {
	return time.Time(t).Before(time.Time(t2))
}

func (t Time) After(t2 Time) bool {
	return time.Time(t).After(time.Time(t2))
}

func (t Time) AddDays(days int) Time {
	return Time(time.Time(t).AddDate(0, 0, days))
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date value: %s", s)
	}

	tv, err := time.Parse(DateFormat, s[1:len(s)-1])
	if err != nil {
		return err
	}

	*t = Time(tv)
	return nil
}
