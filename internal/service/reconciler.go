package service

import (
	"context"
	"fmt"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/internal/store"
	"github.com/akhmedov/repsync/models"
)

// Reconciler merges server-origin data into the local session without
// discarding unsynced edits. Both merge directions match by exercise name
// plus set number, never by set id: local ids and server-assigned ids can
// diverge until an exercise-day's first successful sync.
type Reconciler struct {
	queue  store.PendingWriteQueue
	logger *logger.Logger
}

// NewReconciler constructs a Reconciler over the given queue.
func NewReconciler(queue store.PendingWriteQueue, logger *logger.Logger) *Reconciler {
	return &Reconciler{queue: queue, logger: logger}
}

// ApplyInitialRecords overwrites matching sets' weight, reps, and done flags
// with the server's "last workout" records, keyed by exercise name and set
// number. Sets without a matching record keep their defaults; record lists
// for unknown exercise names are skipped. Used to prefill a fresh session.
//
// ReplayQueued must run after this merge, never before: reversing the order
// lets server data clobber unsynced local edits.
func (r *Reconciler) ApplyInitialRecords(session models.Session, recordsByExercise map[string][]models.SetRecord) models.Session {
	for name, records := range recordsByExercise {
		ex, ok := session.ExerciseByName(name)
		if !ok {
			continue
		}
		session = overwriteBySetNumber(session, ex.ID, records, false)
	}
	return session
}

// ApplyServerRecords merges one exercise's just-persisted records into the
// session: weight, reps, and done are overwritten per set number, and the
// server-assigned record id is stamped onto the local set so future edits
// address the correct row. A record without an id preserves any previously
// stamped remote id. Unknown exercise names are a no-op.
func (r *Reconciler) ApplyServerRecords(session models.Session, exerciseName string, records []models.SetRecord) models.Session {
	ex, ok := session.ExerciseByName(exerciseName)
	if !ok {
		return session
	}
	return overwriteBySetNumber(session, ex.ID, records, true)
}

// StampRemoteIDs copies server-assigned record ids onto matching sets without
// touching weight, reps, or done. Used when a sync confirmation arrives for a
// snapshot the user has already edited past: the ids stay valid, the numeric
// values are stale.
func (r *Reconciler) StampRemoteIDs(session models.Session, exerciseName string, records []models.SetRecord) models.Session {
	ex, ok := session.ExerciseByName(exerciseName)
	if !ok {
		return session
	}

	byNumber := recordsBySetNumber(records)
	sets := append([]models.WorkoutSet(nil), session.Sets...)
	for i, st := range sets {
		if st.ExerciseID != ex.ID {
			continue
		}
		if rec, ok := byNumber[st.SetNumber]; ok && rec.ID != 0 {
			sets[i].RemoteID = rec.ID
		}
	}
	session.Sets = sets
	return session
}

// ReplayQueued overlays every queued snapshot for the session's owner and
// date on top of the session. Queue records take full precedence over the
// current set list of their exercise, including set count: a snapshot with
// three records rebuilds all three sets even when the session was reseeded
// with two. Snapshots for exercises absent from the session are ignored.
func (r *Reconciler) ReplayQueued(ctx context.Context, session models.Session, ownerID int64) (models.Session, error) {
	items, err := r.queue.AllForDay(ctx, ownerID, session.Date)
	if err != nil {
		return session, fmt.Errorf("load queued snapshots: %w", err)
	}

	for _, item := range items {
		ex, ok := session.ExerciseByName(item.ExerciseName)
		if !ok {
			r.logger.Debug().
				Str("func", "Reconciler.ReplayQueued").
				Str("exercise", item.ExerciseName).
				Msg("queued snapshot has no matching exercise in session, skipping")
			continue
		}
		session = replaceExerciseSets(session, ex.ID, item.Records)
	}

	return session, nil
}

// overwriteBySetNumber applies records to the exercise's sets, matching by
// set number. When stampIDs is true, non-zero record ids are copied onto the
// local sets as well.
func overwriteBySetNumber(session models.Session, exerciseID string, records []models.SetRecord, stampIDs bool) models.Session {
	byNumber := recordsBySetNumber(records)

	sets := append([]models.WorkoutSet(nil), session.Sets...)
	for i, st := range sets {
		if st.ExerciseID != exerciseID {
			continue
		}
		rec, ok := byNumber[st.SetNumber]
		if !ok {
			continue
		}
		sets[i].Weight = rec.Weight
		sets[i].Reps = rec.Reps
		sets[i].Done = rec.Done
		if stampIDs && rec.ID != 0 {
			sets[i].RemoteID = rec.ID
		}
	}
	session.Sets = sets
	return session
}

// replaceExerciseSets rebuilds the exercise's set list from records,
// preserving the position of the exercise's block within the session.
func replaceExerciseSets(session models.Session, exerciseID string, records []models.SetRecord) models.Session {
	replacement := make([]models.WorkoutSet, 0, len(records))
	for _, rec := range records {
		replacement = append(replacement, models.WorkoutSet{
			ID:         models.SetID(exerciseID, rec.SetNumber),
			ExerciseID: exerciseID,
			SetNumber:  rec.SetNumber,
			Weight:     rec.Weight,
			Reps:       rec.Reps,
			Done:       rec.Done,
			RemoteID:   rec.ID,
		})
	}

	sets := make([]models.WorkoutSet, 0, len(session.Sets))
	inserted := false
	for _, st := range session.Sets {
		if st.ExerciseID == exerciseID {
			if !inserted {
				sets = append(sets, replacement...)
				inserted = true
			}
			continue
		}
		sets = append(sets, st)
	}
	if !inserted {
		sets = append(sets, replacement...)
	}

	session.Sets = sets
	return session
}

func recordsBySetNumber(records []models.SetRecord) map[int]models.SetRecord {
	byNumber := make(map[int]models.SetRecord, len(records))
	for _, rec := range records {
		byNumber[rec.SetNumber] = rec
	}
	return byNumber
}
