// Package module wires reminders into the API using modkit
package module

import (
	"net/http"

	modkit "almanac/internal/modkit"
	"almanac/internal/modkit/httpkit"
	str "almanac/internal/platform/strings"
	almdom "almanac/internal/services/api/almanac/domain"
	remhttp "almanac/internal/services/api/reminders/http"
	remrepo "almanac/internal/services/api/reminders/repo"
	remsvc "almanac/internal/services/api/reminders/service"
)

// Module implements the reminders module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc remsvc.Service
}

// Ports declares the injected port(s) this module requires
type Ports struct {
	Almanac almdom.ServicePort
}

// New constructs the reminders module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reminders"),
		modkit.WithPrefix("/reminders"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Almanac == nil {
		panic("reminders module requires the almanac port")
	}

	svc := remsvc.New(deps.PG, remrepo.NewPG(), injected.Almanac, nil)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptRemindersPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		remhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
