// Package http provides http transport for the almanac
package http

import (
	stdhttp "net/http"

	"almanac/internal/modkit/httpkit"
	"almanac/internal/services/api/almanac/domain"
	svc "almanac/internal/services/api/almanac/service"
)

// Register mounts almanac endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full day sequence
	httpkit.PostJSON[domain.HoursInput](r, "/hours", h.hoursFor)

	// point query against the same sequence
	httpkit.PostJSON[domain.CurrentHourInput](r, "/hours/current", h.currentHour)

	// day ruler by date
	httpkit.Get(r, "/ruler", h.ruler)

	// dignity table lookup
	httpkit.PostJSON[domain.DignityInput](r, "/dignity", h.dignity)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /almanac/hours Almanac almanacHours
// @Summary The 24 planetary hours of a calendar date
// @Tags Almanac
// @Accept json
// @Produce json
// @Param payload body domain.HoursInput true "Query"
// @Success 200 {object} domain.HoursOutput "ok"
// @Router /almanac/hours [post]
func (h *handlers) hoursFor(r *stdhttp.Request, in domain.HoursInput) (any, error) {
	return h.svc.Hours(r.Context(), in)
}

// swagger:route POST /almanac/hours/current Almanac almanacCurrentHour
// @Summary The planetary hour containing an instant
// @Tags Almanac
// @Accept json
// @Produce json
// @Param payload body domain.CurrentHourInput true "Query"
// @Success 200 {object} domain.CurrentHourOutput "ok"
// @Router /almanac/hours/current [post]
func (h *handlers) currentHour(r *stdhttp.Request, in domain.CurrentHourInput) (any, error) {
	return h.svc.CurrentHour(r.Context(), in)
}

// swagger:route GET /almanac/ruler Almanac almanacRuler
// @Summary The planet ruling a calendar date
// @Tags Almanac
// @Produce json
// @Param date query string true "Calendar date YYYY-MM-DD"
// @Success 200 {object} domain.RulerOutput "ok"
// @Router /almanac/ruler [get]
func (h *handlers) ruler(r *stdhttp.Request) (any, error) {
	return h.svc.Ruler(r.Context(), r.URL.Query().Get("date"))
}

// swagger:route POST /almanac/dignity Almanac almanacDignity
// @Summary Essential dignity of a planet in a zodiac sign
// @Tags Almanac
// @Accept json
// @Produce json
// @Param payload body domain.DignityInput true "Query"
// @Success 200 {object} domain.DignityOutput "ok"
// @Router /almanac/dignity [post]
func (h *handlers) dignity(r *stdhttp.Request, in domain.DignityInput) (any, error) {
	return h.svc.Dignity(r.Context(), in)
}
