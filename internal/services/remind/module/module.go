// Package module wires the reminder dispatcher and exposes its ports
package module

import (
	"almanac/internal/modkit"
	"almanac/internal/modkit/httpkit"
	remdom "almanac/internal/services/api/reminders/domain"
	"almanac/internal/services/remind/service"
)

// Module defines the reminder dispatcher module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the dispatcher module
// the reminders dispatch port comes from the reminders module
func New(deps modkit.Deps, overrides Options, reminders remdom.DispatchPort) *Module {
	// Load defaults, then apply non-zero overrides
	opts := FromConfig(deps.Cfg)

	if overrides.Interval != 0 {
		opts.Interval = overrides.Interval
	}
	if overrides.Batch != 0 {
		opts.Batch = overrides.Batch
	}

	svc := service.New(reminders, service.Config{
		Interval: opts.Interval,
		Batch:    opts.Batch,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Runner: svc, // svc implements RunnerPort
	}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "remind" }

// Prefix returns the module route prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
