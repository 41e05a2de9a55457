// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package models

// ActivePlanResponse is the body of GET /api/plan/active.
type ActivePlanResponse struct {
	Days []DayProgram `json:"days"`
}

// LastWorkoutRequest is the body of POST /api/workouts/last. It asks for the
// most recent logged records of the named exercises.
type LastWorkoutRequest struct {
	OwnerID       int64    `json:"owner_id"`
	ExerciseNames []string `json:"exercise_names"`
}

// ExerciseHistory is one exercise's most recent logged day.
type ExerciseHistory struct {
	ExerciseName string      `json:"exercise_name"`
	Date         string      `json:"date"`
	Records      []SetRecord `json:"records"`
}

// LastWorkoutResponse is the body returned by POST /api/workouts/last.
type LastWorkoutResponse struct {
	Exercises []ExerciseHistory `json:"exercises"`
}

// UpsertDailyRecordRequest is the body of POST /api/workouts/daily: the full
// record set of one exercise on one date.
type UpsertDailyRecordRequest struct {
	OwnerID      int64       `json:"owner_id"`
	ExerciseName string      `json:"exercise_name"`
	Date         string      `json:"date"`
	Records      []SetRecord `json:"records"`
}

// UpsertDailyRecordResponse echoes the persisted records, each carrying the
// server-assigned row id.
type UpsertDailyRecordResponse struct {
	Records []SetRecord `json:"records"`
}
