package devserver

import "github.com/akhmedov/repsync/models"

// SamplePlan is the plan the stub serves by default: a minimal three-day
// split, enough to drive every screen of the client.
func SamplePlan() models.ActivePlanResponse {
	return models.ActivePlanResponse{
		Days: []models.DayProgram{
			{
				DayID: "day-push",
				Name:  "Push",
				Exercises: []models.Exercise{
					{ID: "ex-bench", Name: "Bench Press", TargetReps: 8, RestSeconds: 180},
					{ID: "ex-ohp", Name: "Overhead Press", TargetReps: 10, RestSeconds: 120},
					{ID: "ex-dips", Name: "Dips", TargetReps: 12, RestSeconds: 90},
				},
			},
			{
				DayID: "day-pull",
				Name:  "Pull",
				Exercises: []models.Exercise{
					{ID: "ex-deadlift", Name: "Deadlift", TargetReps: 5, RestSeconds: 240},
					{ID: "ex-row", Name: "Barbell Row", TargetReps: 8, RestSeconds: 150},
					{ID: "ex-curl", Name: "Biceps Curl", TargetReps: 12, RestSeconds: 90},
				},
			},
			{
				DayID: "day-legs",
				Name:  "Legs",
				Exercises: []models.Exercise{
					{ID: "ex-squat", Name: "Back Squat", TargetReps: 5, RestSeconds: 240},
					{ID: "ex-rdl", Name: "Romanian Deadlift", TargetReps: 10, RestSeconds: 150},
					{ID: "ex-calf", Name: "Calf Raise", TargetReps: 15, RestSeconds: 60},
				},
			},
		},
	}
}
