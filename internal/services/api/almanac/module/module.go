// Package module wires the almanac into the API using modkit
package module

import (
	"net/http"
	"strings"

	modkit "almanac/internal/modkit"
	"almanac/internal/modkit/httpkit"
	str "almanac/internal/platform/strings"
	almhttp "almanac/internal/services/api/almanac/http"
	almsvc "almanac/internal/services/api/almanac/service"
)

// Module implements the almanac module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc almsvc.Service
}

// New constructs the almanac module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("almanac"),
		modkit.WithPrefix("/almanac"),
	}, opts...)...)

	cfg := almsvc.Config{
		DefaultModel: strings.ToLower(deps.Cfg.MayEnum("SOLAR_MODEL", "approx", "approx", "precise")),
	}
	svc := almsvc.New(cfg, nil)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAlmanacPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		almhttp.Register(r, m.svc)
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
