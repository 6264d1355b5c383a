package module

import (
	"time"

	"almanac/internal/platform/config"
)

// Options controls the reminder dispatcher
type Options struct {
	Interval time.Duration
	Batch    int
}

// FromConfig reads with ALMANAC_REMIND_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ALMANAC_REMIND_")
	return Options{
		Interval: c.MayDuration("POLL_INTERVAL", 30*time.Second),
		Batch:    c.MayInt("BATCH", 100),
	}
}
