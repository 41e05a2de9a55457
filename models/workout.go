// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

// Package models contains the shared data types of the repsync client: the
// in-memory workout session, the durable pending-write snapshot, and the wire
// shapes exchanged with the coaching API.
package models

import (
	"fmt"
	"strings"
)

// Exercise is one exercise of a day program as delivered by the coaching API.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TargetReps  int    `json:"target_reps,omitempty"`
	RestSeconds int    `json:"rest_seconds,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// WorkoutSet is one logged attempt (weight x reps) for an exercise. SetNumber
// is 1-based and contiguous within the owning exercise. RemoteID stays zero
// until the server has acknowledged this exact row.
type WorkoutSet struct {
	ID         string  `json:"id"`
	ExerciseID string  `json:"exercise_id"`
	SetNumber  int     `json:"set_number"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Done       bool    `json:"done"`
	RemoteID   int64   `json:"remote_id,omitempty"`
}

// Session is the local view of one calendar day's workout. It is rebuilt
// whenever the active day changes.
type Session struct {
	Date      string       `json:"date"`
	Exercises []Exercise   `json:"exercises"`
	Sets      []WorkoutSet `json:"sets"`
}

// DayProgram is one day of the active training plan.
type DayProgram struct {
	DayID     string     `json:"day_id"`
	Name      string     `json:"name,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

// SetID derives the local set identifier from the owning exercise and the
// 1-based set number.
func SetID(exerciseID string, setNumber int) string {
	return fmt.Sprintf("%s-%d", exerciseID, setNumber)
}

// NormalizeExerciseName is the single normalization applied to exercise names
// before they participate in identity keys or reconciliation matching.
// Lower-casing plus trimming keeps "Bench Press" and " bench press " from
// producing two queued snapshots for the same exercise-day.
func NormalizeExerciseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ExerciseByID returns the exercise with the given id, if present.
func (s Session) ExerciseByID(id string) (Exercise, bool) {
	for _, ex := range s.Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

// ExerciseByName returns the exercise whose normalized name matches name.
func (s Session) ExerciseByName(name string) (Exercise, bool) {
	want := NormalizeExerciseName(name)
	for _, ex := range s.Exercises {
		if NormalizeExerciseName(ex.Name) == want {
			return ex, true
		}
	}
	return Exercise{}, false
}

// SetsForExercise returns the sets owned by exerciseID ordered by set number
// ascending.
func (s Session) SetsForExercise(exerciseID string) []WorkoutSet {
	var sets []WorkoutSet
	for _, st := range s.Sets {
		if st.ExerciseID == exerciseID {
			sets = append(sets, st)
		}
	}
	return sets
}
