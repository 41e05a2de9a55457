// Package service contains the sync core of the repsync client: the session
// state and its edit operations, the snapshot builder, the reconciler that
// merges server data into the session, and the sync engine that drains the
// pending-write queue.
package service

import (
	"github.com/akhmedov/repsync/internal/adapter"
	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/internal/store"
)

// ClientServices aggregates the stateful pieces of the client core so the
// wiring layer constructs them once and in the right order.
type ClientServices struct {
	Session    *SessionHolder
	Reconciler *Reconciler
	Tracker    *ChangeTracker
	SyncEngine SyncEngine
	SyncJob    SyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	session := NewSessionHolder()
	reconciler := NewReconciler(storages.PendingWrites, log)
	tracker := NewChangeTracker()
	engine := NewSyncEngine(storages.PendingWrites, serverAdapter, session, reconciler, tracker, log)

	return &ClientServices{
		Session:    session,
		Reconciler: reconciler,
		Tracker:    tracker,
		SyncEngine: engine,
		SyncJob:    NewSyncJob(engine),
	}
}
