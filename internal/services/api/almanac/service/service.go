// Package service contains the almanac workflows over the pure hour engine
package service

import (
	"context"
	"time"

	"almanac/internal/core/chaldean"
	"almanac/internal/core/hours"
	"almanac/internal/core/solar"
	perr "almanac/internal/platform/errors"
	"almanac/internal/platform/logger"
	"almanac/internal/services/api/almanac/domain"
)

// Service defines the almanac service contract
type Service interface {
	domain.ServicePort
}

// Config tunes service defaults
type Config struct {
	// DefaultModel selects the solar calculator when a request names none,
	// approx or precise
	DefaultModel string
}

// Svc implements the almanac service
// the engine itself is pure, Svc owns only defaulting, parsing, and the
// clock seam for the is_current flag
type Svc struct {
	cfg   Config
	clock func() time.Time
}

// New constructs an almanac service, clock may be nil for time.Now
func New(cfg Config, clock func() time.Time) *Svc {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = "approx"
	}
	if clock == nil {
		clock = time.Now
	}
	return &Svc{cfg: cfg, clock: clock}
}

// calculator maps a wire model name to a solar calculator
func (s *Svc) calculator(model string) (string, solar.Calculator) {
	if model == "" {
		model = s.cfg.DefaultModel
	}
	if model == "precise" {
		return model, solar.Precise{}
	}
	return "approx", solar.Approx{}
}

// resolve turns the wire level date/zone/location into engine inputs
// a missing location becomes the documented 0,0 default, a malformed date is
// a caller error and propagates
func (s *Svc) resolve(ctx context.Context, date, tz string, loc domain.Location) (solar.Date, *time.Location, float64, float64, bool, error) {
	d, err := solar.ParseDate(date)
	if err != nil {
		return solar.Date{}, nil, 0, 0, false, perr.WithField(err, "date")
	}
	if !d.Valid() {
		return solar.Date{}, nil, 0, 0, false,
			perr.WithField(perr.Newf(perr.ErrorCodeValidation, "date %q does not exist", date), "date")
	}

	zone := time.UTC
	if tz != "" {
		zone, err = time.LoadLocation(tz)
		if err != nil {
			return solar.Date{}, nil, 0, 0, false,
				perr.WithField(perr.Newf(perr.ErrorCodeValidation, "unknown time zone %q", tz), "time_zone")
		}
	}

	lat, lon, defaulted := 0.0, 0.0, false
	switch {
	case loc.Latitude != nil && loc.Longitude != nil:
		lat, lon = *loc.Latitude, *loc.Longitude
	case loc.Latitude == nil && loc.Longitude == nil:
		// no location permission upstream, not an error, degrade to the
		// equator/prime-meridian default
		defaulted = true
		logger.C(ctx).Debug().Str("date", date).Msg("no location supplied, using 0,0")
	default:
		return solar.Date{}, nil, 0, 0, false,
			perr.New(perr.ErrorCodeValidation, "latitude and longitude must be supplied together")
	}

	return d, zone, lat, lon, defaulted, nil
}

// now parses the optional caller instant or falls back to the injected clock
func (s *Svc) now(raw string, zone *time.Location) (time.Time, error) {
	if raw == "" {
		return s.clock().In(zone), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "invalid instant %q", raw), "now")
	}
	return t.In(zone), nil
}

// Hours computes the ordered 24 hour sequence for one calendar date
func (s *Svc) Hours(ctx context.Context, in domain.HoursInput) (domain.HoursOutput, error) {
	d, zone, lat, lon, defaulted, err := s.resolve(ctx, in.Date, in.TimeZone, in.Location)
	if err != nil {
		return domain.HoursOutput{}, err
	}
	now, err := s.now(in.Now, zone)
	if err != nil {
		return domain.HoursOutput{}, err
	}

	model, calc := s.calculator(in.Model)
	hs := hours.Compute(d, lat, lon, zone, calc)

	rows := make([]domain.HourRow, 0, len(hs))
	for _, h := range hs {
		rows = append(rows, toRow(h, now))
	}
	return domain.HoursOutput{
		Date:      d.String(),
		DayRuler:  string(hours.DayRuler(d)),
		Sunrise:   hs[0].Start.Format(time.RFC3339),
		Sunset:    hs[12].Start.Format(time.RFC3339),
		TimeZone:  zone.String(),
		Latitude:  lat,
		Longitude: lon,
		Model:     model,
		Defaulted: defaulted,
		Hours:     rows,
	}, nil
}

// CurrentHour answers which hour of the requested date contains now
func (s *Svc) CurrentHour(ctx context.Context, in domain.CurrentHourInput) (domain.CurrentHourOutput, error) {
	d, zone, lat, lon, _, err := s.resolve(ctx, in.Date, in.TimeZone, in.Location)
	if err != nil {
		return domain.CurrentHourOutput{}, err
	}
	now, err := s.now(in.Now, zone)
	if err != nil {
		return domain.CurrentHourOutput{}, err
	}

	_, calc := s.calculator(in.Model)
	hs := hours.Compute(d, lat, lon, zone, calc)

	out := domain.CurrentHourOutput{
		Date: d.String(),
		Now:  now.Format(time.RFC3339),
	}
	if h, ok := hours.Current(hs, now); ok {
		row := toRow(h, now)
		out.Found = true
		out.Hour = &row
	}
	return out, nil
}

// Ruler returns the planet ruling a calendar date
func (s *Svc) Ruler(_ context.Context, date string) (domain.RulerOutput, error) {
	d, err := solar.ParseDate(date)
	if err != nil {
		return domain.RulerOutput{}, perr.WithField(err, "date")
	}
	if !d.Valid() {
		return domain.RulerOutput{},
			perr.WithField(perr.Newf(perr.ErrorCodeValidation, "date %q does not exist", date), "date")
	}
	return domain.RulerOutput{
		Date:    d.String(),
		Weekday: d.Weekday().String(),
		Planet:  string(hours.DayRuler(d)),
	}, nil
}

// Dignity classifies a planet's essential dignity in a zodiac sign
func (s *Svc) Dignity(_ context.Context, in domain.DignityInput) (domain.DignityOutput, error) {
	p, err := chaldean.Parse(in.Planet)
	if err != nil {
		return domain.DignityOutput{}, perr.WithField(err, "planet")
	}

	out := domain.DignityOutput{Planet: string(p), Sign: in.Sign}
	if canonical, ok := chaldean.CanonicalSign(in.Sign); ok {
		out.Sign = canonical
	}
	if dig := chaldean.DignityOf(p, in.Sign); dig != chaldean.DignityNone {
		s := string(dig)
		out.Dignity = &s
	}
	return out, nil
}

func toRow(h hours.Hour, now time.Time) domain.HourRow {
	period := "night"
	if h.Day {
		period = "day"
	}
	return domain.HourRow{
		Ordinal:   h.Ordinal,
		Number:    h.Number,
		Planet:    string(h.Planet),
		Period:    period,
		StartTime: h.Start.Format(time.RFC3339),
		EndTime:   h.End.Format(time.RFC3339),
		IsCurrent: !now.Before(h.Start) && now.Before(h.End),
	}
}
