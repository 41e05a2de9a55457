package store

import (
	"context"

	"github.com/akhmedov/repsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PendingWriteQueue is the durable, upsert-keyed store of snapshots awaiting
// transmission. It is the single source of truth for "what has not yet
// reached the server": every mutation is written through to SQLite before the
// call returns, so the queue survives a process crash with no loss of the
// most recent upsert per key.
type PendingWriteQueue interface {
	// Upsert inserts item under its identity key, or replaces the records,
	// date, and exercise name of an existing entry with the same key while
	// preserving the original CreatedAt. Safe to call on every keystroke:
	// growth is bounded by the number of distinct exercise-days.
	Upsert(ctx context.Context, item models.PendingWrite) error

	// Remove deletes the entry matching item's identity key. Removing a
	// non-existent key is a no-op.
	Remove(ctx context.Context, item models.PendingWrite) error

	// Get returns the entry for the given identity key. The second return
	// value is false when no entry exists.
	Get(ctx context.Context, ownerID int64, date, exerciseName string) (models.PendingWrite, bool, error)

	// All returns every queued item, ordered by first-enqueued time and key
	// so a single load is deterministic.
	All(ctx context.Context) ([]models.PendingWrite, error)

	// AllForDay returns the queued items for one owner and calendar day, in
	// the same order as All.
	AllForDay(ctx context.Context, ownerID int64, date string) ([]models.PendingWrite, error)
}

// PreferencesRepository persists the last-selected day and the lightweight
// user-preference blob. Neither is part of the sync correctness contract.
type PreferencesRepository interface {
	// SaveLastDay records the most recently selected day program id.
	SaveLastDay(ctx context.Context, ownerID int64, dayID string) error

	// LastDay returns the most recently selected day program id, or "" when
	// none has been stored.
	LastDay(ctx context.Context, ownerID int64) (string, error)

	// SavePreferences stores the preference blob.
	SavePreferences(ctx context.Context, ownerID int64, prefs models.Preferences) error

	// Preferences returns the stored preference blob, or defaults when none
	// has been stored.
	Preferences(ctx context.Context, ownerID int64) (models.Preferences, error)
}
