// Package service implements the reminder dispatch loop
package service

import (
	"context"
	"time"

	"almanac/internal/platform/logger"
	remdom "almanac/internal/services/api/reminders/domain"
)

// Config tunes the dispatch loop
type Config struct {
	// Interval between polls
	Interval time.Duration

	// Batch caps reminders taken per sweep
	Batch int
}

// Svc polls due reminders and marks them dispatched
// actual delivery is a structured log line, push transports hang off the
// same seam later
type Svc struct {
	reminders remdom.DispatchPort
	cfg       Config
}

// New constructs the dispatcher
func New(reminders remdom.DispatchPort, cfg Config) *Svc {
	if reminders == nil {
		panic("remind.Service requires the reminders dispatch port")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Batch <= 0 {
		cfg.Batch = 100
	}
	return &Svc{reminders: reminders, cfg: cfg}
}

// Sweep performs one poll and dispatch pass
func (s *Svc) Sweep(ctx context.Context) (int, error) {
	log := logger.Named("remind")

	due, err := s.reminders.Due(ctx, s.cfg.Batch)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(due))
	for _, r := range due {
		log.Info().
			Str("id", r.ID).
			Str("label", r.Label).
			Str("planet", r.Planet).
			Str("starts_at", r.StartsAt).
			Msg("reminder due")
		ids = append(ids, r.ID)
	}

	n, err := s.reminders.MarkDispatched(ctx, ids)
	if err != nil {
		return 0, err
	}
	if int(n) != len(ids) {
		// another dispatcher instance got some of the batch first
		log.Debug().Int64("stamped", n).Int("taken", len(ids)).Msg("partial dispatch")
	}
	return int(n), nil
}

// Run polls until ctx is canceled
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("remind")
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				log.Error().Err(err).Msg("dispatch sweep failed")
			}
		}
	}
}
