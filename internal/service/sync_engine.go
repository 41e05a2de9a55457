// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akhmedov/repsync/internal/adapter"
	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/internal/store"
	"github.com/akhmedov/repsync/models"
)

// syncEngine drains the pending-write queue against the coaching API. One
// flush cycle is in flight at most; concurrent triggers are skipped rather
// than queued, because the running cycle already drains everything enqueued
// before it snapshots the queue.
type syncEngine struct {
	queue      store.PendingWriteQueue
	adapter    adapter.ServerAdapter
	session    *SessionHolder
	reconciler *Reconciler
	tracker    *ChangeTracker
	logger     *logger.Logger

	mu sync.Mutex
}

// NewSyncEngine constructs the sync engine over the given queue, transport,
// and session state.
func NewSyncEngine(
	queue store.PendingWriteQueue,
	serverAdapter adapter.ServerAdapter,
	session *SessionHolder,
	reconciler *Reconciler,
	tracker *ChangeTracker,
	log *logger.Logger,
) SyncEngine {
	return &syncEngine{
		queue:      queue,
		adapter:    serverAdapter,
		session:    session,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     log,
	}
}

// Flush sends every queued snapshot to the server, sequentially, isolating
// failures per item: a snapshot that fails stays queued and the cycle moves
// on to the next one. The queue is read once at the start of the cycle;
// snapshots enqueued mid-cycle wait for the next trigger.
func (e *syncEngine) Flush(ctx context.Context, ownerID int64) FlushResult {
	if !e.mu.TryLock() {
		return FlushResult{Status: FlushSkipped}
	}
	defer e.mu.Unlock()

	log := e.logger.With().
		Str("flush_id", uuid.NewString()).
		Int64("owner_id", ownerID).
		Logger()

	items, err := e.queue.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("flush: reading pending-write queue failed")
		return FlushResult{Status: FlushPartial}
	}
	if len(items) == 0 {
		return FlushResult{Status: FlushNoop}
	}

	result := FlushResult{Attempted: len(items)}
	for _, item := range items {
		if err = ctx.Err(); err != nil {
			log.Warn().Err(err).Msg("flush: context cancelled, remaining items stay queued")
			result.Failed += result.Attempted - result.Succeeded - result.Failed
			break
		}

		if err = e.flushItem(ctx, item); err != nil {
			log.Warn().Err(err).
				Str("exercise", item.ExerciseName).
				Str("date", item.Date).
				Msg("flush: item failed, keeping it queued")
			result.Failed++
			continue
		}
		result.Succeeded++
	}

	if result.Failed > 0 {
		result.Status = FlushPartial
	} else {
		result.Status = FlushAllSynced
	}
	log.Info().
		Int("attempted", result.Attempted).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Str("status", result.Status.String()).
		Msg("flush cycle finished")
	return result
}

// flushItem sends one snapshot and, on success, confirms it against the
// current queue state.
func (e *syncEngine) flushItem(ctx context.Context, item models.PendingWrite) error {
	resp, err := e.adapter.UpsertDailyRecord(ctx, models.UpsertDailyRecordRequest{
		OwnerID:      item.OwnerID,
		ExerciseName: item.ExerciseName,
		Date:         item.Date,
		Records:      item.Records,
	})
	if err != nil {
		return err
	}

	e.confirm(ctx, item, resp.Records)
	return nil
}

// confirm finishes a successful upsert. The user may have edited the same
// exercise while the request was in flight, so the queue entry is re-read:
// if it still holds the records that were sent, the server's response is
// merged into the session, recorded as the last-synced state, and the entry
// is removed. If a newer snapshot replaced it, only the server-assigned ids
// are stamped onto the session and the entry stays queued for the next
// cycle.
func (e *syncEngine) confirm(ctx context.Context, item models.PendingWrite, serverRecords []models.SetRecord) {
	current, found, err := e.queue.Get(ctx, item.OwnerID, item.Date, item.ExerciseName)
	if err != nil {
		e.logger.Error().Err(err).
			Str("exercise", item.ExerciseName).
			Str("date", item.Date).
			Msg("confirm: re-reading queue entry failed, keeping it queued")
		e.stampSession(item, serverRecords)
		return
	}

	stale := found && !models.RecordsEqual(current.Records, item.Records)
	if stale {
		e.logger.Debug().
			Str("exercise", item.ExerciseName).
			Str("date", item.Date).
			Msg("confirm: snapshot superseded mid-flight, stamping ids only")
		e.stampSession(item, serverRecords)
		return
	}

	if e.session != nil && e.session.Current().Date == item.Date {
		session := e.session.Update(func(s models.Session) models.Session {
			return e.reconciler.ApplyServerRecords(s, item.ExerciseName, serverRecords)
		})
		if ex, ok := session.ExerciseByName(item.ExerciseName); ok {
			e.tracker.RecordSynced(ex.ID, serverRecords)
		}
	}

	if err = e.queue.Remove(ctx, item); err != nil {
		e.logger.Error().Err(err).
			Str("exercise", item.ExerciseName).
			Str("date", item.Date).
			Msg("confirm: removing synced entry failed, it will be resent")
	}
}

// stampSession copies server-assigned ids onto the session without touching
// the numeric values, when the session still shows the item's day.
func (e *syncEngine) stampSession(item models.PendingWrite, serverRecords []models.SetRecord) {
	if e.session == nil || e.session.Current().Date != item.Date {
		return
	}
	e.session.Update(func(s models.Session) models.Session {
		return e.reconciler.StampRemoteIDs(s, item.ExerciseName, serverRecords)
	})
}

// Dirty reports whether the exercise-day still has a queued snapshot.
func (e *syncEngine) Dirty(ctx context.Context, ownerID int64, date, exerciseName string) bool {
	_, found, err := e.queue.Get(ctx, ownerID, date, exerciseName)
	if err != nil {
		e.logger.Error().Err(err).
			Str("exercise", exerciseName).
			Str("date", date).
			Msg("dirty check: reading queue failed")
		return true
	}
	return found
}
