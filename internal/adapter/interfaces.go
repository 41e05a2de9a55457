// Package adapter contains the outbound transport layer of the repsync
// client: the [ServerAdapter] contract and its HTTP implementation over the
// coaching API.
package adapter

import (
	"context"

	"github.com/akhmedov/repsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the remote operations the sync core consumes. The
// remote service is the source of truth; every method maps to one endpoint
// and returns a sentinel-wrapped error on non-2xx responses.
type ServerAdapter interface {
	// ActivePlan fetches the owner's active training plan, used to seed a
	// session for the selected day.
	ActivePlan(ctx context.Context, ownerID int64) (models.ActivePlanResponse, error)

	// LastWorkoutSets fetches the most recent logged records for the named
	// exercises, used to prefill a fresh session.
	LastWorkoutSets(ctx context.Context, req models.LastWorkoutRequest) (models.LastWorkoutResponse, error)

	// UpsertDailyRecord replaces the full record set of one exercise-day on
	// the server and returns the persisted records, each carrying its
	// server-assigned row id.
	UpsertDailyRecord(ctx context.Context, req models.UpsertDailyRecordRequest) (models.UpsertDailyRecordResponse, error)
}
