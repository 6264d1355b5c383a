// Package service contains reminder workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"almanac/internal/modkit/repokit"
	perr "almanac/internal/platform/errors"
	almdom "almanac/internal/services/api/almanac/domain"
	"almanac/internal/services/api/reminders/domain"
	"almanac/internal/services/api/reminders/repo"
)

// Service defines the reminders contract
type Service interface {
	domain.ServicePort
	domain.DispatchPort
}

// Svc implements the Service interface
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	almanac almdom.ServicePort
	clock   func() time.Time
}

// New creates a reminders service, clock may be nil for time.Now
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], almanac almdom.ServicePort, clock func() time.Time) *Svc {
	if db == nil {
		panic("reminders.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reminders.Service requires a non nil Repo binder")
	}
	if almanac == nil {
		panic("reminders.Service requires the almanac port")
	}
	if clock == nil {
		clock = time.Now
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, almanac: almanac, clock: clock}
}

// Create resolves the named hour through the almanac and stores a reminder
// pinned to that hour's start instant
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Reminder, error) {
	hrs, err := s.almanac.Hours(ctx, almdom.HoursInput{
		Date:     in.Date,
		Location: in.Location,
		TimeZone: in.TimeZone,
		Model:    in.Model,
	})
	if err != nil {
		return domain.Reminder{}, err
	}
	if in.HourOrdinal < 1 || in.HourOrdinal > len(hrs.Hours) {
		return domain.Reminder{},
			perr.WithField(perr.Newf(perr.ErrorCodeValidation, "hour ordinal %d out of range", in.HourOrdinal), "hour_ordinal")
	}
	h := hrs.Hours[in.HourOrdinal-1]

	starts, err := time.Parse(time.RFC3339, h.StartTime)
	if err != nil {
		return domain.Reminder{}, perr.Wrap(err, perr.ErrorCodeUnknown, "parse hour start")
	}
	ends, err := time.Parse(time.RFC3339, h.EndTime)
	if err != nil {
		return domain.Reminder{}, perr.Wrap(err, perr.ErrorCodeUnknown, "parse hour end")
	}
	if !starts.Before(ends) {
		return domain.Reminder{}, perr.Internalf("hour %d has a non increasing window", in.HourOrdinal)
	}
	if !ends.After(s.clock()) {
		return domain.Reminder{},
			perr.Conflictf("hour %d of %s already ended", in.HourOrdinal, hrs.Date)
	}

	row := repo.RowReminder{
		ID:          uuid.NewString(),
		Label:       in.Label,
		Date:        hrs.Date,
		HourOrdinal: in.HourOrdinal,
		Planet:      h.Planet,
		StartsAt:    starts,
		EndsAt:      ends,
	}
	createdAt, err := s.Repo.Insert(ctx, row)
	if err != nil {
		return domain.Reminder{}, err
	}
	row.CreatedAt = createdAt
	return toWire(row), nil
}

// Upcoming lists pending reminders whose hour has not ended yet
func (s *Svc) Upcoming(ctx context.Context, in domain.UpcomingInput) ([]domain.Reminder, error) {
	rows, err := s.Repo.Upcoming(ctx, s.clock(), in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reminder, 0, len(rows))
	for _, r := range rows {
		out = append(out, toWire(r))
	}
	return out, nil
}

// Cancel removes a pending reminder by id
func (s *Svc) Cancel(ctx context.Context, in domain.CancelInput) (domain.CancelOutput, error) {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return domain.CancelOutput{}, err
	}
	if !ok {
		return domain.CancelOutput{}, perr.NotFoundf("reminder %s not found", in.ID)
	}
	return domain.CancelOutput{ID: in.ID, Canceled: true}, nil
}

// Due lists reminders whose hour has started and that were never dispatched
func (s *Svc) Due(ctx context.Context, limit int) ([]domain.Reminder, error) {
	rows, err := s.Repo.Due(ctx, s.clock(), limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reminder, 0, len(rows))
	for _, r := range rows {
		out = append(out, toWire(r))
	}
	return out, nil
}

// MarkDispatched stamps the given reminders as delivered
func (s *Svc) MarkDispatched(ctx context.Context, ids []string) (int64, error) {
	return s.Repo.MarkDispatched(ctx, ids, s.clock())
}

func toWire(r repo.RowReminder) domain.Reminder {
	out := domain.Reminder{
		ID:          r.ID,
		Label:       r.Label,
		Date:        r.Date,
		HourOrdinal: r.HourOrdinal,
		Planet:      r.Planet,
		StartsAt:    r.StartsAt.Format(time.RFC3339),
		EndsAt:      r.EndsAt.Format(time.RFC3339),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if r.DispatchedAt != nil {
		s := r.DispatchedAt.Format(time.RFC3339)
		out.DispatchedAt = &s
	}
	return out
}
