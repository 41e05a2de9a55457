package tui

import "github.com/akhmedov/repsync/models"

// row is one rendered line of the set grid: either an exercise header or a
// set line.
type row struct {
	header   bool
	exercise models.Exercise
	set      models.WorkoutSet
}

func buildRows(session models.Session) []row {
	var rows []row
	for _, ex := range session.Exercises {
		rows = append(rows, row{header: true, exercise: ex})
		for _, set := range session.SetsForExercise(ex.ID) {
			rows = append(rows, row{exercise: ex, set: set})
		}
	}
	return rows
}

// cursorSet returns the set under the cursor, when the cursor sits on a set
// row.
func cursorSet(rows []row, cursor int) (models.WorkoutSet, bool) {
	if cursor < 0 || cursor >= len(rows) || rows[cursor].header {
		return models.WorkoutSet{}, false
	}
	return rows[cursor].set, true
}

// nextSetRow moves the cursor down to the next set row, staying put at the
// end.
func nextSetRow(rows []row, cursor int) int {
	for i := cursor + 1; i < len(rows); i++ {
		if !rows[i].header {
			return i
		}
	}
	return clampCursor(rows, cursor)
}

// prevSetRow moves the cursor up to the previous set row, staying put at the
// top.
func prevSetRow(rows []row, cursor int) int {
	for i := cursor - 1; i >= 0; i-- {
		if !rows[i].header {
			return i
		}
	}
	return clampCursor(rows, cursor)
}

// clampCursor snaps the cursor onto the nearest set row, preferring the one
// at or above the current position. Returns 0 for a session with no sets.
func clampCursor(rows []row, cursor int) int {
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	for i := cursor; i >= 0; i-- {
		if i < len(rows) && !rows[i].header {
			return i
		}
	}
	for i := 0; i < len(rows); i++ {
		if !rows[i].header {
			return i
		}
	}
	return 0
}
