package solar

import (
	"math"
	"time"

	"almanac/internal/platform/logger"
)

// Approx is the seasonal sine model of day length
//
// Day length swings around a 12 hour base by up to 3 hours, scaled by how far
// the latitude sits from the equator and by the time of year. The hemisphere
// sign flips the seasons south of the equator. This matches the legacy client
// model exactly, it is an engineering approximation, not solar-position
// astronomy, and its error against an ephemeris is accepted behavior
type Approx struct{}

// maximum swing of the day length in hours at the poles
const maxVariationHours = 3.0

// Events implements Calculator
//
// A non-finite intermediate (NaN latitude, absurd inputs) never propagates,
// the fixed 06:00/18:00 pair is substituted and the substitution is logged
func (Approx) Events(d Date, lat, lon float64, loc *time.Location) Events {
	_ = lon // the model varies by latitude and season only

	doy := float64(d.YearDay())

	latScale := math.Abs(lat) / 90
	seasonal := math.Sin(doy / 365 * 2 * math.Pi)
	hemisphere := 1.0
	if lat < 0 {
		hemisphere = -1.0
	}
	variation := maxVariationHours * latScale * seasonal * hemisphere

	riseHour := 12 - 6 - variation/2
	setHour := 12 + 6 + variation/2

	if !finiteHour(riseHour) || !finiteHour(setHour) {
		logger.Named("solar").Warn().
			Float64("lat", lat).
			Str("date", d.String()).
			Msg("non-finite solar result, using 06:00/18:00 fallback")
		return Fallback(d, loc)
	}

	return Events{
		Rise: clockTime(d, riseHour, loc),
		Set:  clockTime(d, setHour, loc),
	}
}

func finiteHour(h float64) bool {
	return !math.IsNaN(h) && !math.IsInf(h, 0) && h >= 0 && h < 24
}

// clockTime converts a fractional hour into an instant on d, minutes are
// rounded the way the legacy client rounded them
func clockTime(d Date, h float64, loc *time.Location) time.Time {
	hour := int(math.Floor(h))
	minute := int(math.Round((h - math.Floor(h)) * 60))
	if minute == 60 {
		hour++
		minute = 0
	}
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}
