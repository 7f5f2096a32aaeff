package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted in plans, flags and requests.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC. RFC 3339 timestamps are accepted
// and truncated to their date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// AddMonths adds months to a date, clamping the day to the end of the target
// month (Jan 31 + 1 month is Feb 28/29, not Mar 3).
func AddMonths(date time.Time, months int) time.Time {
	first := time.Date(date.Year(), date.Month(), 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	target := first.AddDate(0, months, 0)
	day := date.Day()
	if last := DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// AddYears adds whole years to a date with the same clamping as AddMonths.
func AddYears(date time.Time, years int) time.Time {
	return AddMonths(date, years*12)
}

// YearCompletionDates returns the date each of the first n years after start completes.
func YearCompletionDates(start time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = AddYears(start, i+1)
	}
	return dates
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
