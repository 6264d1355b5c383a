package domain

import "context"

// ServicePort is the reminders surface other modules may depend on
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Reminder, error)
	Upcoming(ctx context.Context, in UpcomingInput) ([]Reminder, error)
	Cancel(ctx context.Context, in CancelInput) (CancelOutput, error)
}

// DispatchPort is consumed by the reminder worker, not by HTTP
type DispatchPort interface {
	Due(ctx context.Context, limit int) ([]Reminder, error)
	MarkDispatched(ctx context.Context, ids []string) (int64, error)
}
