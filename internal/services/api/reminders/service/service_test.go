package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"almanac/internal/modkit/repokit"
	perr "almanac/internal/platform/errors"
	almsvc "almanac/internal/services/api/almanac/service"
	"almanac/internal/services/api/reminders/domain"
	"almanac/internal/services/api/reminders/repo"
)

// fakeRepo keeps reminders in memory, ordering matches the SQL contract
// closely enough for the workflows under test
type fakeRepo struct {
	rows []repo.RowReminder
}

func (f *fakeRepo) Insert(_ context.Context, row repo.RowReminder) (time.Time, error) {
	row.CreatedAt = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	f.rows = append(f.rows, row)
	return row.CreatedAt, nil
}

func (f *fakeRepo) Upcoming(_ context.Context, after time.Time, limit int) ([]repo.RowReminder, error) {
	var out []repo.RowReminder
	for _, r := range f.rows {
		if r.DispatchedAt == nil && !r.EndsAt.Before(after) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Due(_ context.Context, at time.Time, limit int) ([]repo.RowReminder, error) {
	var out []repo.RowReminder
	for _, r := range f.rows {
		if r.DispatchedAt == nil && !r.StartsAt.After(at) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkDispatched(_ context.Context, ids []string, at time.Time) (int64, error) {
	var n int64
	for i := range f.rows {
		for _, id := range ids {
			if f.rows[i].ID == id && f.rows[i].DispatchedAt == nil {
				t := at
				f.rows[i].DispatchedAt = &t
				n++
			}
		}
	}
	return n, nil
}

type fakeBinder struct{ r *fakeRepo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

// noopTx satisfies TxRunner without a database
type noopTx struct{}

func (noopTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error { return fn(noopTx{}) }
func (noopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	var z repokit.CommandTag
	return z, nil
}

func (noopTx) Query(context.Context, string, ...any) (repokit.Rows, error) {
	var z repokit.Rows
	return z, nil
}
func (noopTx) QueryRow(context.Context, string, ...any) repokit.Row { var z repokit.Row; return z }

func f64(v float64) *float64 { return &v }

func newTestSvc(now time.Time) (*Svc, *fakeRepo) {
	fr := &fakeRepo{}
	clock := func() time.Time { return now }
	alm := almsvc.New(almsvc.Config{}, clock)
	return New(noopTx{}, fakeBinder{r: fr}, alm, clock), fr
}

func createInput(ordinal int) domain.CreateInput {
	return domain.CreateInput{
		Label:       "venus hour",
		Date:        "2025-03-07",
		HourOrdinal: ordinal,
		TimeZone:    "America/Denver",
	}
}

func TestCreate(t *testing.T) {
	// well before the day starts, every hour is still ahead
	now := time.Date(2025, 3, 7, 1, 0, 0, 0, time.UTC)
	s, fr := newTestSvc(now)

	in := createInput(1)
	in.Latitude = f64(37.8714)
	in.Longitude = f64(-109.3425)

	rem, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uuid.Parse(rem.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", rem.ID, err)
	}
	if rem.Planet != "venus" {
		t.Fatalf("planet = %s, want venus for a Friday first hour", rem.Planet)
	}
	if rem.Date != "2025-03-07" || rem.HourOrdinal != 1 {
		t.Fatalf("unexpected reminder %+v", rem)
	}
	starts, _ := time.Parse(time.RFC3339, rem.StartsAt)
	ends, _ := time.Parse(time.RFC3339, rem.EndsAt)
	if !starts.Before(ends) {
		t.Fatalf("starts %v not before ends %v", starts, ends)
	}
	if rem.DispatchedAt != nil {
		t.Fatalf("fresh reminder must not be dispatched")
	}
	if len(fr.rows) != 1 {
		t.Fatalf("rows stored = %d, want 1", len(fr.rows))
	}
}

func TestCreateRejectsEndedHour(t *testing.T) {
	// a day later the whole sequence is in the past
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	s, _ := newTestSvc(now)

	_, err := s.Create(context.Background(), createInput(1))
	if err == nil {
		t.Fatalf("expected error for an ended hour")
	}
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("code = %v, want conflict", perr.CodeOf(err))
	}
}

func TestCreateRejectsBadOrdinal(t *testing.T) {
	now := time.Date(2025, 3, 7, 1, 0, 0, 0, time.UTC)
	s, _ := newTestSvc(now)

	_, err := s.Create(context.Background(), createInput(25))
	if err == nil {
		t.Fatalf("expected error for ordinal 25")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
}

func TestUpcomingAndCancel(t *testing.T) {
	now := time.Date(2025, 3, 7, 1, 0, 0, 0, time.UTC)
	s, _ := newTestSvc(now)
	ctx := context.Background()

	first, err := s.Create(ctx, createInput(3))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(ctx, createInput(7)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ups, err := s.Upcoming(ctx, domain.UpcomingInput{})
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(ups) != 2 {
		t.Fatalf("upcoming = %d, want 2", len(ups))
	}

	out, err := s.Cancel(ctx, domain.CancelInput{ID: first.ID})
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if !out.Canceled {
		t.Fatalf("expected canceled")
	}

	ups, err = s.Upcoming(ctx, domain.UpcomingInput{})
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(ups) != 1 {
		t.Fatalf("upcoming after cancel = %d, want 1", len(ups))
	}

	if _, err := s.Cancel(ctx, domain.CancelInput{ID: first.ID}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second cancel code = %v, want not found", perr.CodeOf(err))
	}
}

func TestDueAndMarkDispatched(t *testing.T) {
	now := time.Date(2025, 3, 7, 1, 0, 0, 0, time.UTC)
	s, fr := newTestSvc(now)
	ctx := context.Background()

	rem, err := s.Create(ctx, createInput(1))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// before the hour starts nothing is due
	due, err := s.Due(ctx, 10)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("due before start = %d, want 0", len(due))
	}

	// advance past the hour start
	starts, _ := time.Parse(time.RFC3339, rem.StartsAt)
	later := starts.Add(time.Minute)
	s.clock = func() time.Time { return later }

	due, err = s.Due(ctx, 10)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("due after start = %d, want 1", len(due))
	}

	n, err := s.MarkDispatched(ctx, []string{rem.ID})
	if err != nil {
		t.Fatalf("MarkDispatched: %v", err)
	}
	if n != 1 {
		t.Fatalf("dispatched = %d, want 1", n)
	}
	if fr.rows[0].DispatchedAt == nil {
		t.Fatalf("row not stamped")
	}

	due, err = s.Due(ctx, 10)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("due after dispatch = %d, want 0", len(due))
	}
}
