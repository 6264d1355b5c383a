// Package api provides the HTTP API for the application
package api

import (
	"almanac/internal/platform/config"
	"almanac/internal/platform/logger"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/platform/store"

	"almanac/internal/modkit"
	"almanac/internal/modkit/httpkit"
	"almanac/internal/modkit/module"
	"almanac/internal/modkit/swaggerkit"

	almdom "almanac/internal/services/api/almanac/domain"
	almanacmod "almanac/internal/services/api/almanac/module"
	metamod "almanac/internal/services/api/meta/module"
	remindersmod "almanac/internal/services/api/reminders/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// almanac first, reminders depends on its hour computation port
	almanac := almanacmod.New(deps)
	almPort := module.MustPortsOf[almdom.ServicePort](almanac)

	reminders := remindersmod.New(
		deps,
		modkit.WithPorts(remindersmod.Ports{
			Almanac: almPort,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		almanac,
		reminders,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
