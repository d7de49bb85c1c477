package synth

import (
	"fmt"
	"time"
)

const (
	// DateLayout renders calendar dates.
	DateLayout = "2006-01-02"
	// TimestampLayout renders second-resolution timestamps.
	TimestampLayout = "2006-01-02 15:04:05"

	day = 24 * time.Hour
)

// SentinelDate marks a lifecycle that has not ended yet ("still active").
var SentinelDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// IsSentinel reports whether t is the far-future sentinel.
func IsSentinel(t time.Time) bool {
	return t.Equal(SentinelDate)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last whole second of t's calendar day (UTC).
func EndOfDay(t time.Time) time.Time {
	return Day(t).Add(day - time.Second)
}

// DaysBefore returns the day n fractional days before t, truncated to a day.
func DaysBefore(t time.Time, n float64) time.Time {
	return Day(t).Add(-time.Duration(n * float64(day)))
}

// YearsBefore returns the day that lies years*365.25 days before t.
func YearsBefore(t time.Time, years int) time.Time {
	return Day(DaysBefore(t, 365.25*float64(years)))
}

// DateBetween draws a calendar day uniformly from [lo, hi], both inclusive.
// Inputs are truncated to their day first.
func DateBetween(src *Source, lo, hi time.Time) (time.Time, error) {
	lo, hi = Day(lo), Day(hi)
	if lo.After(hi) {
		return time.Time{}, fmt.Errorf("date between %s and %s: %w",
			lo.Format(DateLayout), hi.Format(DateLayout), ErrRange)
	}
	span := int64(hi.Sub(lo) / day)
	return lo.AddDate(0, 0, int(src.Int64N(span+1))), nil
}

// TimeBetween draws a whole-second instant uniformly from [lo, hi].
func TimeBetween(src *Source, lo, hi time.Time) (time.Time, error) {
	lo, hi = lo.UTC().Truncate(time.Second), hi.UTC().Truncate(time.Second)
	if lo.After(hi) {
		return time.Time{}, fmt.Errorf("time between %s and %s: %w",
			lo.Format(TimestampLayout), hi.Format(TimestampLayout), ErrRange)
	}
	span := int64(hi.Sub(lo) / time.Second)
	return lo.Add(time.Duration(src.Int64N(span+1)) * time.Second), nil
}
