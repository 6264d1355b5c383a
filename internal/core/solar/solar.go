// Package solar computes sunrise and sunset instants for a calendar date
// and location
//
// Two calculators are provided. Approx reproduces the seasonal sine model the
// mobile client shipped with, including its approximation error, and is the
// default. Precise delegates to an ephemeris-grade library. Both are pure
// functions of their inputs, no clock reads and no I/O
package solar

import (
	"time"

	perr "almanac/internal/platform/errors"
)

// Date is a calendar date with no time-of-day component
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD date string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, perr.Newf(perr.ErrorCodeValidation, "invalid date %q, want YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// In returns midnight of d in loc
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of week of d, Sunday is 0
func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// YearDay returns the 1-based day of year of d
func (d Date) YearDay() int {
	return d.In(time.UTC).YearDay()
}

// String formats d as YYYY-MM-DD
func (d Date) String() string {
	return d.In(time.UTC).Format("2006-01-02")
}

// Valid reports whether d round-trips through the calendar
// rejects things like February 30 that time.Date would normalize away
func (d Date) Valid() bool {
	t := d.In(time.UTC)
	y, m, day := t.Date()
	return y == d.Year && m == d.Month && day == d.Day
}

// Events holds the sunrise and sunset instants for one calendar date
// Rise precedes Set for any latitude between the polar circles, polar edge
// cases fall back to the fixed 06:00/18:00 pair
type Events struct {
	Rise time.Time
	Set  time.Time
}

// Calculator produces solar events for a date and geographic position
// loc is only used to construct the returned instants
type Calculator interface {
	Events(d Date, lat, lon float64, loc *time.Location) Events
}

// Fallback is the deterministic 06:00/18:00 local pair used whenever a
// calculator cannot produce a finite, ordered result
func Fallback(d Date, loc *time.Location) Events {
	return Events{
		Rise: time.Date(d.Year, d.Month, d.Day, 6, 0, 0, 0, loc),
		Set:  time.Date(d.Year, d.Month, d.Day, 18, 0, 0, 0, loc),
	}
}
