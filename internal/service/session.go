package service

import (
	"github.com/akhmedov/repsync/models"
)

// defaultSetsPerExercise is the number of sets seeded for every exercise of a
// freshly built session.
const defaultSetsPerExercise = 2

// NewSession builds a fresh session for one calendar day from a day program,
// seeding each exercise with default sets. An empty program yields an empty
// session; the constructor never fails.
func NewSession(date string, program models.DayProgram) models.Session {
	session := models.Session{
		Date:      date,
		Exercises: append([]models.Exercise(nil), program.Exercises...),
	}

	for _, ex := range program.Exercises {
		for n := 1; n <= defaultSetsPerExercise; n++ {
			session.Sets = append(session.Sets, models.WorkoutSet{
				ID:         models.SetID(ex.ID, n),
				ExerciseID: ex.ID,
				SetNumber:  n,
			})
		}
	}

	return session
}

// SetWeight updates one set's weight and returns the updated session together
// with the owning exercise id, for the caller to snapshot. An unknown set id
// is a no-op and returns "". Negative weights are clamped to zero. The
// auto-complete policy applies.
func SetWeight(session models.Session, setID string, weight float64) (models.Session, string) {
	if weight < 0 {
		weight = 0
	}
	return mutateSet(session, setID, func(set models.WorkoutSet) models.WorkoutSet {
		set.Weight = weight
		return autoComplete(set)
	})
}

// SetReps updates one set's rep count, clamping negatives to zero. The
// auto-complete policy applies. Returns the owning exercise id, or "" for an
// unknown set id.
func SetReps(session models.Session, setID string, reps int) (models.Session, string) {
	if reps < 0 {
		reps = 0
	}
	return mutateSet(session, setID, func(set models.WorkoutSet) models.WorkoutSet {
		set.Reps = reps
		return autoComplete(set)
	})
}

// ToggleDone flips one set's done flag without touching weight or reps and
// without applying the auto-complete policy.
func ToggleDone(session models.Session, setID string) (models.Session, string) {
	return mutateSet(session, setID, func(set models.WorkoutSet) models.WorkoutSet {
		set.Done = !set.Done
		return set
	})
}

// AddSet appends a new empty set at the tail of the exercise's set list.
// An unknown exercise id is a no-op and returns "".
func AddSet(session models.Session, exerciseID string) (models.Session, string) {
	if _, ok := session.ExerciseByID(exerciseID); !ok {
		return session, ""
	}

	existing := session.SetsForExercise(exerciseID)
	next := len(existing) + 1
	newSet := models.WorkoutSet{
		ID:         models.SetID(exerciseID, next),
		ExerciseID: exerciseID,
		SetNumber:  next,
	}

	sets := make([]models.WorkoutSet, 0, len(session.Sets)+1)
	inserted := false
	for i, st := range session.Sets {
		sets = append(sets, st)
		// keep sets grouped per exercise: insert after the exercise's tail
		if st.ExerciseID == exerciseID {
			last := i == len(session.Sets)-1 || session.Sets[i+1].ExerciseID != exerciseID
			if last {
				sets = append(sets, newSet)
				inserted = true
			}
		}
	}
	if !inserted {
		sets = append(sets, newSet)
	}

	session.Sets = sets
	return session, exerciseID
}

// RemoveSet drops the exercise's tail set. It is a no-op while only one set
// remains, and for unknown exercise ids.
func RemoveSet(session models.Session, exerciseID string) (models.Session, string) {
	existing := session.SetsForExercise(exerciseID)
	if len(existing) <= 1 {
		return session, ""
	}

	lastID := existing[len(existing)-1].ID
	sets := make([]models.WorkoutSet, 0, len(session.Sets)-1)
	for _, st := range session.Sets {
		if st.ID == lastID && st.ExerciseID == exerciseID {
			continue
		}
		sets = append(sets, st)
	}

	session.Sets = sets
	return session, exerciseID
}

// mutateSet applies fn to the set with the given id, copying the set slice so
// the input session value stays untouched. Unknown ids return the session
// unchanged with an empty exercise id.
func mutateSet(session models.Session, setID string, fn func(models.WorkoutSet) models.WorkoutSet) (models.Session, string) {
	for i, st := range session.Sets {
		if st.ID != setID {
			continue
		}
		sets := append([]models.WorkoutSet(nil), session.Sets...)
		sets[i] = fn(st)
		session.Sets = sets
		return session, st.ExerciseID
	}
	return session, ""
}
