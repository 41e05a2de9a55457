package client

import "github.com/akhmedov/repsync/models"

// DefaultProgram is the bundled fallback plan, used when the coaching API is
// unreachable on first start and nothing has been cached yet. It mirrors a
// plain three-day full-body split so the logger is usable offline out of the
// box.
func DefaultProgram() []models.DayProgram {
	return []models.DayProgram{
		{
			DayID: "default-a",
			Name:  "Full Body A",
			Exercises: []models.Exercise{
				{ID: "def-squat", Name: "Back Squat", TargetReps: 5, RestSeconds: 180},
				{ID: "def-bench", Name: "Bench Press", TargetReps: 8, RestSeconds: 150},
				{ID: "def-row", Name: "Barbell Row", TargetReps: 8, RestSeconds: 150},
			},
		},
		{
			DayID: "default-b",
			Name:  "Full Body B",
			Exercises: []models.Exercise{
				{ID: "def-deadlift", Name: "Deadlift", TargetReps: 5, RestSeconds: 240},
				{ID: "def-ohp", Name: "Overhead Press", TargetReps: 10, RestSeconds: 120},
				{ID: "def-pullup", Name: "Pull Up", TargetReps: 10, RestSeconds: 120},
			},
		},
		{
			DayID: "default-c",
			Name:  "Full Body C",
			Exercises: []models.Exercise{
				{ID: "def-frontsquat", Name: "Front Squat", TargetReps: 8, RestSeconds: 180},
				{ID: "def-incline", Name: "Incline Press", TargetReps: 10, RestSeconds: 120},
				{ID: "def-curl", Name: "Biceps Curl", TargetReps: 12, RestSeconds: 90},
			},
		},
	}
}
