package module

import (
	"context"

	"almanac/internal/services/api/reminders/domain"
	remsvc "almanac/internal/services/api/reminders/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptRemindersPort exposes service methods as module ports, the dispatch
// worker reaches reminders through this seam
type adaptRemindersPort struct{ svc remsvc.Service }

func (a adaptRemindersPort) Create(ctx context.Context, in domain.CreateInput) (domain.Reminder, error) {
	return a.svc.Create(ctx, in)
}

func (a adaptRemindersPort) Upcoming(ctx context.Context, in domain.UpcomingInput) ([]domain.Reminder, error) {
	return a.svc.Upcoming(ctx, in)
}

func (a adaptRemindersPort) Cancel(ctx context.Context, in domain.CancelInput) (domain.CancelOutput, error) {
	return a.svc.Cancel(ctx, in)
}

func (a adaptRemindersPort) Due(ctx context.Context, limit int) ([]domain.Reminder, error) {
	return a.svc.Due(ctx, limit)
}

func (a adaptRemindersPort) MarkDispatched(ctx context.Context, ids []string) (int64, error) {
	return a.svc.MarkDispatched(ctx, ids)
}
