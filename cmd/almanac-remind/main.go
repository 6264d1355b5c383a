package main

import (
	"context"
	"flag"

	"almanac/internal/modkit"
	"almanac/internal/modkit/module"
	"almanac/internal/platform/config"
	"almanac/internal/platform/logger"
	"almanac/internal/platform/store"

	almdom "almanac/internal/services/api/almanac/domain"
	almanacmod "almanac/internal/services/api/almanac/module"
	remdom "almanac/internal/services/api/reminders/domain"
	remindersmod "almanac/internal/services/api/reminders/module"
	remindmod "almanac/internal/services/remind/module"
)

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Flags
	var (
		fOnce     = flag.Bool("once", false, "run a single dispatch sweep, then exit")
		fInterval = flag.Duration("interval", 0, "poll interval (overrides ALMANAC_REMIND_POLL_INTERVAL)")
		fBatch    = flag.Int("batch", 0, "max reminders per sweep (overrides ALMANAC_REMIND_BATCH)")
	)
	flag.Parse()

	// Shared deps
	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	// the dispatcher reaches reminders through the same modules the API mounts
	almanac := almanacmod.New(deps)
	almPort := module.MustPortsOf[almdom.ServicePort](almanac)

	reminders := remindersmod.New(
		deps,
		modkit.WithPorts(remindersmod.Ports{Almanac: almPort}),
	)
	dispatch := module.MustPortsOf[remdom.DispatchPort](reminders)

	rm := remindmod.New(deps, remindmod.Options{
		Interval: *fInterval,
		Batch:    *fBatch,
	}, dispatch)

	module.Register(rm.Name(), rm.Ports())
	ports := module.MustPortsOf[remindmod.Ports](rm)

	ctx := context.Background()

	if *fOnce {
		n, err := ports.Runner.Sweep(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("dispatch sweep failed")
		}
		l.Info().Int("dispatched", n).Msg("sweep complete")
		return
	}

	if err := ports.Runner.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("reminder dispatcher stopped")
	}
}
