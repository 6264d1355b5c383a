// Package http provides http transport for reminders
package http

import (
	stdhttp "net/http"

	"almanac/internal/modkit/httpkit"
	"almanac/internal/services/api/reminders/domain"
	svc "almanac/internal/services/api/reminders/service"
)

// Register mounts reminder endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.UpcomingInput](r, "/upcoming", h.upcoming)
	httpkit.PostJSON[domain.CancelInput](r, "/cancel", h.cancel)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /reminders/create Reminders remindersCreate
// @Summary Create a reminder for the start of a planetary hour
// @Tags Reminders
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Reminder"
// @Success 200 {object} domain.Reminder "ok"
// @Router /reminders/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /reminders/upcoming Reminders remindersUpcoming
// @Summary Pending reminders ordered by hour start
// @Tags Reminders
// @Accept json
// @Produce json
// @Param payload body domain.UpcomingInput true "Filter"
// @Success 200 {array} domain.Reminder "ok"
// @Router /reminders/upcoming [post]
func (h *handlers) upcoming(r *stdhttp.Request, in domain.UpcomingInput) (any, error) {
	return h.svc.Upcoming(r.Context(), in)
}

// swagger:route POST /reminders/cancel Reminders remindersCancel
// @Summary Cancel a pending reminder by id
// @Tags Reminders
// @Accept json
// @Produce json
// @Param payload body domain.CancelInput true "Target"
// @Success 200 {object} domain.CancelOutput "ok"
// @Router /reminders/cancel [post]
func (h *handlers) cancel(r *stdhttp.Request, in domain.CancelInput) (any, error) {
	return h.svc.Cancel(r.Context(), in)
}
