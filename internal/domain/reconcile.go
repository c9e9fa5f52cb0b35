package domain

import "time"

// ReconcileStats summarizes one pass of the reconciliation job.
type ReconcileStats struct {
	Scanned   int
	Corrected int
	Errors    int
	Skipped   bool // another run held the lock
	Duration  time.Duration
}
