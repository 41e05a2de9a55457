// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package models

import (
	"fmt"
	"time"
)

// SetRecord is the wire shape of one set row, used both in queued snapshots
// and in coaching-API requests and responses. ID carries the server-assigned
// row id and is zero for rows the server has never seen.
type SetRecord struct {
	ID        int64   `json:"id,omitempty"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Done      bool    `json:"done"`
	SetNumber int     `json:"set_number"`
}

// PendingWrite is a durable snapshot of one exercise-day awaiting
// transmission. At most one PendingWrite exists per identity key; a newer
// snapshot for the same key replaces the prior one in place, keeping the
// original CreatedAt.
type PendingWrite struct {
	OwnerID      int64       `json:"owner_id"`
	Date         string      `json:"date"`
	ExerciseName string      `json:"exercise_name"`
	Records      []SetRecord `json:"records"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Key returns the identity key of the snapshot: owner, calendar day, and the
// normalized exercise name.
func (p PendingWrite) Key() string {
	return PendingWriteKey(p.OwnerID, p.Date, p.ExerciseName)
}

// PendingWriteKey builds the composite identity key used to address queue
// entries.
func PendingWriteKey(ownerID int64, date, exerciseName string) string {
	return fmt.Sprintf("%d|%s|%s", ownerID, date, NormalizeExerciseName(exerciseName))
}

// RecordsEqual reports whether two record lists carry the same logged values
// in the same order. Server-assigned ids are ignored: a mid-flight id stamp
// must not make an otherwise unchanged snapshot look edited.
func RecordsEqual(a, b []SetRecord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].SetNumber != b[i].SetNumber ||
			a[i].Weight != b[i].Weight ||
			a[i].Reps != b[i].Reps ||
			a[i].Done != b[i].Done {
			return false
		}
	}
	return true
}
