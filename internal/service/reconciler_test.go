// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/models"
)

func newTestReconciler(queue *stubQueue) *Reconciler {
	return NewReconciler(queue, logger.Nop())
}

// ── ApplyInitialRecords ──────────────────────────────────────────────────────

func TestApplyInitialRecords_PrefillsBySetNumber(t *testing.T) {
	r := newTestReconciler(newStubQueue())
	session := NewSession("2026-08-31", pushDay())

	session = r.ApplyInitialRecords(session, map[string][]models.SetRecord{
		"bench press": {
			{Weight: 80, Reps: 8, Done: true, SetNumber: 1},
			{Weight: 82.5, Reps: 6, Done: true, SetNumber: 2},
		},
	})

	bench := session.SetsForExercise("ex-bench")
	assert.Equal(t, 80.0, bench[0].Weight)
	assert.Equal(t, 8, bench[0].Reps)
	assert.True(t, bench[0].Done)
	assert.Equal(t, 82.5, bench[1].Weight)

	// prefill never stamps remote ids: those rows belong to a past day
	assert.Zero(t, bench[0].RemoteID)
}

func TestApplyInitialRecords_NameMatchIsNormalized(t *testing.T) {
	r := newTestReconciler(newStubQueue())
	session := NewSession("2026-08-31", pushDay())

	session = r.ApplyInitialRecords(session, map[string][]models.SetRecord{
		"  BENCH PRESS ": {{Weight: 70, Reps: 10, SetNumber: 1}},
	})

	assert.Equal(t, 70.0, session.SetsForExercise("ex-bench")[0].Weight)
}

func TestApplyInitialRecords_UnknownExerciseSkipped(t *testing.T) {
	r := newTestReconciler(newStubQueue())
	session := NewSession("2026-08-31", pushDay())

	updated := r.ApplyInitialRecords(session, map[string][]models.SetRecord{
		"deadlift": {{Weight: 140, Reps: 5, SetNumber: 1}},
	})

	assert.Equal(t, session, updated)
}

func TestApplyInitialRecords_ExtraRecordNumbersIgnored(t *testing.T) {
	r := newTestReconciler(newStubQueue())
	session := NewSession("2026-08-31", pushDay())

	// last workout had three sets, fresh session seeds only two
	session = r.ApplyInitialRecords(session, map[string][]models.SetRecord{
		"bench press": {
			{Weight: 80, Reps: 8, SetNumber: 1},
			{Weight: 80, Reps: 7, SetNumber: 2},
			{Weight: 80, Reps: 5, SetNumber: 3},
		},
	})

	assert.Len(t, session.SetsForExercise("ex-bench"), 2)
}

// ── ApplyServerRecords / StampRemoteIDs ──────────────────────────────────────

func TestApplyServerRecords_OverwritesAndStampsIDs(t *testing.T) {
	r := newTestReconciler(newStubQueue())
	session := NewSession("2026-08-31", pushDay())

	session = r.ApplyServerRecords(session, "Bench Press", []models.SetRecord{
		{ID: 501, Weight: 80, Reps: 8, Done: true, SetNumber: 1},
		{ID: 502, Weight: 82.5, Reps: 6, Done: true, SetNumber: 2},
	})

	bench := session.SetsForExercise("ex-bench")
	assert.Equal(t, int64(501), bench[0].RemoteID)
	assert.Equal(t, int64(502), bench[1].RemoteID)
	assert.Equal(t, 80.0, bench[0].Weight)
	assert.True(t, bench[1].Done)
}

func TestApplyServerRecords_ZeroIDPreservesStampedOne(t *testing.T) {
	r := newTestReconciler(newStubQueue())
	session := NewSession("2026-08-31", pushDay())
	session.Sets[0].RemoteID = 501

	session = r.ApplyServerRecords(session, "Bench Press", []models.SetRecord{
		{Weight: 85, Reps: 5, Done: true, SetNumber: 1},
	})

	assert.Equal(t, int64(501), session.SetsForExercise("ex-bench")[0].RemoteID)
	assert.Equal(t, 85.0, session.SetsForExercise("ex-bench")[0].Weight)
}

func TestStampRemoteIDs_LeavesValuesAlone(t *testing.T) {
	r := newTestReconciler(newStubQueue())
	session := NewSession("2026-08-31", pushDay())
	session, _ = SetWeight(session, "ex-bench-1", 90)
	session, _ = SetReps(session, "ex-bench-1", 3)

	session = r.StampRemoteIDs(session, "Bench Press", []models.SetRecord{
		{ID: 501, Weight: 80, Reps: 8, Done: true, SetNumber: 1},
	})

	bench := session.SetsForExercise("ex-bench")[0]
	assert.Equal(t, int64(501), bench.RemoteID)
	assert.Equal(t, 90.0, bench.Weight, "stale server values must not clobber the newer edit")
	assert.Equal(t, 3, bench.Reps)
}

// ── ReplayQueued ─────────────────────────────────────────────────────────────

func TestReplayQueued_QueuedSnapshotWinsOverPrefill(t *testing.T) {
	queue := newStubQueue()
	r := newTestReconciler(queue)
	ctx := context.Background()

	require.NoError(t, queue.Upsert(ctx, models.PendingWrite{
		OwnerID:      42,
		Date:         "2026-08-31",
		ExerciseName: "Bench Press",
		Records: []models.SetRecord{
			{Weight: 55, Reps: 8, Done: true, SetNumber: 1},
			{Weight: 55, Reps: 8, Done: true, SetNumber: 2},
		},
	}))

	session := NewSession("2026-08-31", pushDay())
	session = r.ApplyInitialRecords(session, map[string][]models.SetRecord{
		"bench press": {
			{Weight: 50, Reps: 8, SetNumber: 1},
			{Weight: 50, Reps: 8, SetNumber: 2},
		},
	})

	session, err := r.ReplayQueued(ctx, session, 42)
	require.NoError(t, err)

	bench := session.SetsForExercise("ex-bench")
	assert.Equal(t, 55.0, bench[0].Weight, "unsynced local edit outranks server history")
	assert.Equal(t, 55.0, bench[1].Weight)
	assert.True(t, bench[0].Done)
}

func TestReplayQueued_ReversedOrderLosesLocalEdit(t *testing.T) {
	queue := newStubQueue()
	r := newTestReconciler(queue)
	ctx := context.Background()

	require.NoError(t, queue.Upsert(ctx, models.PendingWrite{
		OwnerID:      42,
		Date:         "2026-08-31",
		ExerciseName: "Bench Press",
		Records:      []models.SetRecord{{Weight: 55, Reps: 8, Done: true, SetNumber: 1}},
	}))

	session := NewSession("2026-08-31", pushDay())
	session, err := r.ReplayQueued(ctx, session, 42)
	require.NoError(t, err)

	// prefill after replay clobbers the queued edit; this is the bug the
	// fixed load ordering prevents
	session = r.ApplyInitialRecords(session, map[string][]models.SetRecord{
		"bench press": {{Weight: 50, Reps: 8, SetNumber: 1}},
	})

	assert.Equal(t, 50.0, session.SetsForExercise("ex-bench")[0].Weight)
}

func TestReplayQueued_RestoresAddedSet(t *testing.T) {
	queue := newStubQueue()
	r := newTestReconciler(queue)
	ctx := context.Background()

	// the user had added a third set before the app restarted
	require.NoError(t, queue.Upsert(ctx, models.PendingWrite{
		OwnerID:      42,
		Date:         "2026-08-31",
		ExerciseName: "Bench Press",
		Records: []models.SetRecord{
			{Weight: 80, Reps: 8, Done: true, SetNumber: 1},
			{Weight: 80, Reps: 7, Done: true, SetNumber: 2},
			{Weight: 80, Reps: 5, Done: true, SetNumber: 3},
		},
	}))

	session := NewSession("2026-08-31", pushDay())
	session, err := r.ReplayQueued(ctx, session, 42)
	require.NoError(t, err)

	bench := session.SetsForExercise("ex-bench")
	require.Len(t, bench, 3)
	assert.Equal(t, "ex-bench-3", bench[2].ID)
	assert.Equal(t, 5, bench[2].Reps)
	assert.Len(t, session.SetsForExercise("ex-ohp"), 2)
}

func TestReplayQueued_OtherDayIgnored(t *testing.T) {
	queue := newStubQueue()
	r := newTestReconciler(queue)
	ctx := context.Background()

	require.NoError(t, queue.Upsert(ctx, models.PendingWrite{
		OwnerID:      42,
		Date:         "2026-08-30",
		ExerciseName: "Bench Press",
		Records:      []models.SetRecord{{Weight: 99, Reps: 9, SetNumber: 1}},
	}))

	session := NewSession("2026-08-31", pushDay())
	session, err := r.ReplayQueued(ctx, session, 42)
	require.NoError(t, err)

	assert.Zero(t, session.SetsForExercise("ex-bench")[0].Weight)
}

func TestReplayQueued_QueueErrorPropagates(t *testing.T) {
	queue := newStubQueue()
	queue.allForDayErr = errors.New("db locked")
	r := newTestReconciler(queue)

	session := NewSession("2026-08-31", pushDay())
	_, err := r.ReplayQueued(context.Background(), session, 42)

	require.Error(t, err)
	assert.ErrorContains(t, err, "load queued snapshots")
}
