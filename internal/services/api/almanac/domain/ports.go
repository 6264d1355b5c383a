package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Hours(ctx context.Context, in HoursInput) (HoursOutput, error)
	CurrentHour(ctx context.Context, in CurrentHourInput) (CurrentHourOutput, error)
	Ruler(ctx context.Context, date string) (RulerOutput, error)
	Dignity(ctx context.Context, in DignityInput) (DignityOutput, error)
}
