package workers

import (
	"context"
	"time"

	"github.com/akhmedov/repsync/internal/service"
)

// syncWorker starts the periodic queue flush for one owner. Run returns
// immediately; the flush loop lives in the job's own goroutine until ctx is
// cancelled.
type syncWorker struct {
	job      service.SyncJob
	ctx      context.Context
	ownerID  int64
	interval time.Duration
}

// NewSyncWorker wraps the sync job as a Worker bound to the given owner and
// interval.
func NewSyncWorker(ctx context.Context, job service.SyncJob, ownerID int64, interval time.Duration) Worker {
	return &syncWorker{job: job, ctx: ctx, ownerID: ownerID, interval: interval}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.ownerID, w.interval)
}
