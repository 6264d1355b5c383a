// Package domain holds DTOs for almanac http and service contracts
package domain

// Dates travel as ISO8601 calendar dates, instants as RFC3339 in the
// requested zone

// Location is an optional geographic position
// when absent the service substitutes the documented 0,0 default rather than
// failing, planetary hour display degrades gracefully without a fix
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"  validate:"omitempty,min=-90,max=90"   example:"37.8714"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180" example:"-109.3425"`
}

// HoursInput requests the 24 planetary hours of one calendar date
type HoursInput struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-03-07"`
	Location
	TimeZone string `json:"time_zone,omitempty" validate:"omitempty,timezone" example:"America/Denver"`
	// solar model, approx reproduces the legacy client math, precise is
	// ephemeris grade
	Model string `json:"model,omitempty" validate:"omitempty,oneof=approx precise" example:"approx"`
	// Now is an optional instant used to flag the active hour, defaults to
	// the server clock
	Now string `json:"now,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2025-03-07T17:20:25-07:00"`
}

// CurrentHourInput asks which planetary hour contains an instant
type CurrentHourInput = HoursInput

// HourRow is one computed planetary hour on the wire
type HourRow struct {
	Ordinal   int    `json:"ordinal"    example:"1"`
	Number    int    `json:"number"     example:"1"`
	Planet    string `json:"planet"     example:"venus"`
	Period    string `json:"period"     example:"day"` // day or night
	StartTime string `json:"start_time" example:"2025-03-07T05:26:00-07:00"`
	EndTime   string `json:"end_time"   example:"2025-03-07T06:31:40-07:00"`
	IsCurrent bool   `json:"is_current" example:"false"`
}

// HoursOutput is the full day sequence plus the inputs it was derived from
type HoursOutput struct {
	Date      string    `json:"date"       example:"2025-03-07"`
	DayRuler  string    `json:"day_ruler"  example:"venus"`
	Sunrise   string    `json:"sunrise"    example:"2025-03-07T05:26:00-07:00"`
	Sunset    string    `json:"sunset"     example:"2025-03-07T18:34:00-07:00"`
	TimeZone  string    `json:"time_zone"  example:"America/Denver"`
	Latitude  float64   `json:"latitude"   example:"37.8714"`
	Longitude float64   `json:"longitude"  example:"-109.3425"`
	Model     string    `json:"model"      example:"approx"`
	Defaulted bool      `json:"defaulted_location" example:"false"`
	Hours     []HourRow `json:"hours"`
}

// CurrentHourOutput wraps the active hour, Hour is null when the instant
// falls outside the requested date's span
type CurrentHourOutput struct {
	Date  string   `json:"date" example:"2025-03-07"`
	Now   string   `json:"now"  example:"2025-03-07T17:20:25-07:00"`
	Found bool     `json:"found"`
	Hour  *HourRow `json:"hour,omitempty"`
}

// RulerOutput names the planet ruling a calendar date
type RulerOutput struct {
	Date    string `json:"date"    example:"2025-03-07"`
	Weekday string `json:"weekday" example:"Friday"`
	Planet  string `json:"planet"  example:"venus"`
}

// DignityInput classifies a planet's dignity in a zodiac sign
type DignityInput struct {
	Planet string `json:"planet" validate:"required" example:"sun"`
	Sign   string `json:"sign"   validate:"required" example:"Leo"`
}

// DignityOutput carries the classification, Dignity is null when the sign
// holds no special dignity for the planet
type DignityOutput struct {
	Planet  string  `json:"planet" example:"sun"`
	Sign    string  `json:"sign"   example:"Leo"`
	Dignity *string `json:"dignity" example:"rulership"`
}
