package service

import (
	"context"
	"errors"
	"testing"
	"time"

	remdom "almanac/internal/services/api/reminders/domain"
)

type fakePort struct {
	due     []remdom.Reminder
	dueErr  error
	stamped [][]string
	markN   int64
	markErr error
}

func (f *fakePort) Due(_ context.Context, limit int) ([]remdom.Reminder, error) {
	if f.dueErr != nil {
		return nil, f.dueErr
	}
	if limit < len(f.due) {
		return f.due[:limit], nil
	}
	return f.due, nil
}

func (f *fakePort) MarkDispatched(_ context.Context, ids []string) (int64, error) {
	if f.markErr != nil {
		return 0, f.markErr
	}
	f.stamped = append(f.stamped, ids)
	if f.markN != 0 {
		return f.markN, nil
	}
	return int64(len(ids)), nil
}

func TestSweepDispatchesDue(t *testing.T) {
	fp := &fakePort{due: []remdom.Reminder{
		{ID: "a", Label: "one", Planet: "venus"},
		{ID: "b", Label: "two", Planet: "saturn"},
	}}
	s := New(fp, Config{})

	n, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if n != 2 {
		t.Fatalf("dispatched = %d, want 2", n)
	}
	if len(fp.stamped) != 1 || len(fp.stamped[0]) != 2 {
		t.Fatalf("stamped = %+v, want one batch of 2", fp.stamped)
	}
}

func TestSweepNothingDue(t *testing.T) {
	fp := &fakePort{}
	s := New(fp, Config{})

	n, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if n != 0 {
		t.Fatalf("dispatched = %d, want 0", n)
	}
	if len(fp.stamped) != 0 {
		t.Fatalf("nothing should be stamped, got %+v", fp.stamped)
	}
}

func TestSweepBatchCap(t *testing.T) {
	fp := &fakePort{due: []remdom.Reminder{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	s := New(fp, Config{Batch: 2})

	n, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if n != 2 {
		t.Fatalf("dispatched = %d, want batch cap 2", n)
	}
}

func TestSweepPropagatesErrors(t *testing.T) {
	want := errors.New("boom")

	s := New(&fakePort{dueErr: want}, Config{})
	if _, err := s.Sweep(context.Background()); !errors.Is(err, want) {
		t.Fatalf("Due error not propagated, got %v", err)
	}

	s = New(&fakePort{due: []remdom.Reminder{{ID: "a"}}, markErr: want}, Config{})
	if _, err := s.Sweep(context.Background()); !errors.Is(err, want) {
		t.Fatalf("MarkDispatched error not propagated, got %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New(&fakePort{}, Config{Interval: 5 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run should return the context error, got %v", err)
	}
}
