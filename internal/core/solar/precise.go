package solar

import (
	"time"

	"almanac/internal/platform/logger"

	"github.com/nathan-osman/go-sunrise"
)

// Precise computes ephemeris-grade sunrise and sunset
//
// Inside the polar circles the sun may never rise or set on a given date, the
// library then reports unusable instants and the fixed fallback pair is
// substituted, mirroring the Approx failure policy
type Precise struct{}

// Events implements Calculator
func (Precise) Events(d Date, lat, lon float64, loc *time.Location) Events {
	rise, set := sunrise.SunriseSunset(lat, lon, d.Year, d.Month, d.Day)
	if rise.IsZero() || set.IsZero() || !rise.Before(set) {
		logger.Named("solar").Warn().
			Float64("lat", lat).
			Float64("lon", lon).
			Str("date", d.String()).
			Msg("no sunrise/sunset for date, using 06:00/18:00 fallback")
		return Fallback(d, loc)
	}
	return Events{Rise: rise.In(loc), Set: set.In(loc)}
}
