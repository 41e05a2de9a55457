package service

import (
	"context"
	"time"
)

// FlushStatus summarizes the outcome of one flush cycle.
type FlushStatus int

const (
	// FlushNoop means the queue was empty; there was nothing to send.
	FlushNoop FlushStatus = iota
	// FlushAllSynced means every attempted item reached the server.
	FlushAllSynced
	// FlushPartial means at least one item failed and remains queued.
	FlushPartial
	// FlushSkipped means another flush cycle was already in progress.
	FlushSkipped
)

// String returns a short label for the status, used in logs and the UI chip.
func (s FlushStatus) String() string {
	switch s {
	case FlushNoop:
		return "noop"
	case FlushAllSynced:
		return "all synced"
	case FlushPartial:
		return "some failed"
	case FlushSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// FlushResult reports what one flush cycle did.
type FlushResult struct {
	Status    FlushStatus
	Attempted int
	Succeeded int
	Failed    int
}

// SyncEngine drives the pending-write queue to empty against the coaching
// API, tolerating partial failure, and keeps the session consistent with
// what actually reached the server.
type SyncEngine interface {
	// Flush drains a point-in-time snapshot of the queue, one exercise-day
	// per remote call. Per-item failures are logged and leave the item
	// queued; the cycle itself never propagates transport errors. Concurrent
	// calls while a cycle is in flight return FlushSkipped immediately.
	Flush(ctx context.Context, ownerID int64) FlushResult

	// Dirty reports whether the given exercise-day still has a queued,
	// unconfirmed snapshot. Drives the "unsynced" indicator.
	Dirty(ctx context.Context, ownerID int64, date, exerciseName string) bool
}

// SyncJob is a background worker that periodically flushes the queue for the
// authenticated owner.
type SyncJob interface {
	// Start launches the background sync goroutine. It flushes every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, ownerID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
