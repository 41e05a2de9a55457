package service

import "github.com/akhmedov/repsync/models"

// autoComplete is the single place where the "completed once logged" policy
// lives: a direct weight or reps edit that leaves both values positive marks
// the set done. The explicit toggle path bypasses this function, so a set can
// still be marked done (or undone) by hand regardless of its logged values.
func autoComplete(set models.WorkoutSet) models.WorkoutSet {
	if set.Weight > 0 && set.Reps > 0 {
		set.Done = true
	}
	return set
}
