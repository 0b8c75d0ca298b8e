package contract

import (
	"time"

	"github.com/adbar/shoten/schema"
)

// TruncateToDay strips the clock from a timestamp, keeping the civil date in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalcTimediff computes the difference in days between the reference date and
// a date in YYYY-MM-DD format. Past dates yield positive counts, future dates
// negative ones. ok is false when the date cannot be parsed; a malformed date
// never crashes the caller.
func CalcTimediff(reference time.Time, date string) (days int, ok bool) {
	parsed, err := time.Parse(schema.DateFormat, date)
	if err != nil {
		return 0, false
	}
	diff := TruncateToDay(reference).Sub(parsed)
	return int(diff.Hours() / 24), true
}
