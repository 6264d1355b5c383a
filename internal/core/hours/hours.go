// Package hours partitions a solar day into the 24 unequal planetary hours
//
// The day half runs sunrise to sunset in 12 equal slots, the night half runs
// sunset to the next sunrise in 12 more. The next sunrise is approximated as
// this date's sunrise shifted by 24h rather than recomputed for the following
// date, the legacy behavior, its error grows near solstices at high latitudes.
// Rulers walk the Chaldean order cyclically starting from the day's ruler
package hours

import (
	"time"

	"almanac/internal/core/chaldean"
	"almanac/internal/core/solar"
)

// Hour is one computed planetary hour
// A fresh set of 24 is produced per call and owned by the caller, "is this
// hour current" is a derived query (see Current), never a stored field
type Hour struct {
	Ordinal int             // 1..24 chronological from sunrise
	Number  int             // 1..12 display number within its half
	Planet  chaldean.Planet // ruling planet
	Day     bool            // true for the sunrise..sunset half
	Start   time.Time
	End     time.Time
}

// DayRuler returns the planet ruling the calendar date
func DayRuler(d solar.Date) chaldean.Planet {
	return chaldean.RulerOfWeekday(d.Weekday())
}

// Compute produces the ordered 24-hour partition for a date and location
//
// The partition is contiguous and non-overlapping, hours[0].Start is sunrise,
// each End equals the next Start exactly, and hours[23].End is sunrise+24h.
// Slot boundaries inside a half are multiples of the half's hour length, the
// last slot of each half is pinned to the half boundary so duration rounding
// cannot open a gap
func Compute(d solar.Date, lat, lon float64, loc *time.Location, calc solar.Calculator) []Hour {
	ev := calc.Events(d, lat, lon, loc)

	nextRise := ev.Rise.Add(24 * time.Hour)
	dayHour := ev.Set.Sub(ev.Rise) / 12
	nightHour := nextRise.Sub(ev.Set) / 12

	start := chaldean.Index(DayRuler(d))

	out := make([]Hour, 0, 24)
	for i := 0; i < 24; i++ {
		h := Hour{
			Ordinal: i + 1,
			Planet:  chaldean.Order[(start+i)%7],
			Day:     i < 12,
		}
		if h.Day {
			h.Number = i + 1
			h.Start = ev.Rise.Add(time.Duration(i) * dayHour)
			h.End = ev.Rise.Add(time.Duration(i+1) * dayHour)
			if i == 11 {
				h.End = ev.Set
			}
		} else {
			h.Number = i - 11
			h.Start = ev.Set.Add(time.Duration(i-12) * nightHour)
			h.End = ev.Set.Add(time.Duration(i-11) * nightHour)
			if i == 23 {
				h.End = nextRise
			}
		}
		out = append(out, h)
	}
	return out
}

// Current returns the unique hour whose [Start, End) interval contains now
// ok is false when now falls outside the sequence's 24-hour span, adjacent
// days are never searched, the caller picks the date
func Current(hs []Hour, now time.Time) (Hour, bool) {
	for _, h := range hs {
		if !now.Before(h.Start) && now.Before(h.End) {
			return h, true
		}
	}
	return Hour{}, false
}
