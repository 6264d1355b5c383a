package module

import (
	"context"

	"almanac/internal/services/api/almanac/domain"
	almsvc "almanac/internal/services/api/almanac/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAlmanacPort exposes the service as a domain.ServicePort for modules
// that need hour computation without an HTTP round trip, the reminder
// dispatcher among them
type adaptAlmanacPort struct{ svc almsvc.Service }

// Hours computes the 24 hour sequence for a date
func (a adaptAlmanacPort) Hours(ctx context.Context, in domain.HoursInput) (domain.HoursOutput, error) {
	return a.svc.Hours(ctx, in)
}

// CurrentHour finds the hour containing an instant
func (a adaptAlmanacPort) CurrentHour(ctx context.Context, in domain.CurrentHourInput) (domain.CurrentHourOutput, error) {
	return a.svc.CurrentHour(ctx, in)
}

// Ruler names the planet ruling a date
func (a adaptAlmanacPort) Ruler(ctx context.Context, date string) (domain.RulerOutput, error) {
	return a.svc.Ruler(ctx, date)
}

// Dignity classifies a planet in a sign
func (a adaptAlmanacPort) Dignity(ctx context.Context, in domain.DignityInput) (domain.DignityOutput, error) {
	return a.svc.Dignity(ctx, in)
}
