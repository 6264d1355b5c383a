// Package domain declares the reminder dispatcher ports
package domain

import "context"

// RunnerPort is the dispatcher surface exposed to binaries
type RunnerPort interface {
	// Run polls for due reminders until ctx is canceled
	Run(ctx context.Context) error

	// Sweep performs a single poll and dispatch pass, returning the
	// number of reminders dispatched
	Sweep(ctx context.Context) (int, error)
}
