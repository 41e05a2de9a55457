package service

import (
	"sync"

	"github.com/akhmedov/repsync/models"
)

// ChangeTracker is an explicit side-table of last-synced set values, keyed by
// local set id. The sync boundary owns it and consults it to decide whether
// an edit actually changed anything before enqueuing a snapshot, so a
// keystroke that restores the synced value does not produce queue traffic.
type ChangeTracker struct {
	mu   sync.Mutex
	last map[string]models.SetRecord
}

// NewChangeTracker returns an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{last: make(map[string]models.SetRecord)}
}

// Changed reports whether the set differs from its last-synced values. A set
// the tracker has never seen counts as changed.
func (t *ChangeTracker) Changed(set models.WorkoutSet) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.last[set.ID]
	if !ok {
		return true
	}
	return rec.Weight != set.Weight || rec.Reps != set.Reps || rec.Done != set.Done
}

// RecordSynced stores the given records as the last values confirmed by the
// server for the exercise's sets.
func (t *ChangeTracker) RecordSynced(exerciseID string, records []models.SetRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, rec := range records {
		t.last[models.SetID(exerciseID, rec.SetNumber)] = rec
	}
}

// Reset clears the table. Called on day switch, when every set id changes
// meaning.
func (t *ChangeTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = make(map[string]models.SetRecord)
}
