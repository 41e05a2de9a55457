// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package devserver

import (
	"strconv"
	"strings"
	"sync"

	"github.com/akhmedov/repsync/models"
)

// memoryStore holds the stub API's state: a fixed plan plus every upserted
// exercise-day, keyed the same way the client keys its queue. Record ids are
// assigned from a single monotonic counter, like a serial column would.
type memoryStore struct {
	mu     sync.Mutex
	plan   models.ActivePlanResponse
	days   map[string][]models.SetRecord
	nextID int64
}

func newMemoryStore(plan models.ActivePlanResponse) *memoryStore {
	return &memoryStore{
		plan:   plan,
		days:   make(map[string][]models.SetRecord),
		nextID: 1,
	}
}

func (s *memoryStore) activePlan() models.ActivePlanResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// upsertDay replaces the stored record set of one exercise-day. Rows arriving
// without an id get a fresh one; rows that already carry an id keep it, so a
// re-sent snapshot stays stable.
func (s *memoryStore) upsertDay(req models.UpsertDailyRecordRequest) []models.SetRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]models.SetRecord, len(req.Records))
	copy(stored, req.Records)
	for i := range stored {
		if stored[i].ID == 0 {
			stored[i].ID = s.nextID
			s.nextID++
		}
	}

	s.days[models.PendingWriteKey(req.OwnerID, req.Date, req.ExerciseName)] = stored
	return stored
}

// lastWorkout returns, per requested exercise, the records of the most recent
// date the owner has logged it on.
func (s *memoryStore) lastWorkout(req models.LastWorkoutRequest) models.LastWorkoutResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	var resp models.LastWorkoutResponse
	for _, name := range req.ExerciseNames {
		best, ok := s.latestDayLocked(req.OwnerID, name)
		if !ok {
			continue
		}
		resp.Exercises = append(resp.Exercises, best)
	}
	return resp
}

func (s *memoryStore) latestDayLocked(ownerID int64, exerciseName string) (models.ExerciseHistory, bool) {
	var best models.ExerciseHistory
	found := false
	for key, records := range s.days {
		ownID, date, name, ok := splitKey(key)
		if !ok || ownID != ownerID || name != models.NormalizeExerciseName(exerciseName) {
			continue
		}
		// ISO dates compare correctly as strings
		if !found || date > best.Date {
			best = models.ExerciseHistory{ExerciseName: exerciseName, Date: date, Records: records}
			found = true
		}
	}
	return best, found
}

// splitKey reverses models.PendingWriteKey. Exercise names never contain the
// pipe separator after normalization of real plan data, so SplitN is enough.
func splitKey(key string) (ownerID int64, date, name string, ok bool) {
	parts := strings.SplitN(key, "|", 3)
	if len(parts) != 3 {
		return 0, "", "", false
	}
	ownerID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", "", false
	}
	return ownerID, parts[1], parts[2], true
}
