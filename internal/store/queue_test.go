package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestQueue(t *testing.T, db *sql.DB, now time.Time) *pendingWriteRepository {
	t.Helper()
	return &pendingWriteRepository{
		DB:     newDBFromSQL(db),
		logger: logger.Nop(),
		now:    func() time.Time { return now },
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func benchPressItem() models.PendingWrite {
	return models.PendingWrite{
		OwnerID:      1,
		Date:         "2024-05-01",
		ExerciseName: "Bench Press",
		Records: []models.SetRecord{
			{Weight: 60, Reps: 8, Done: false, SetNumber: 1},
			{Weight: 60, Reps: 10, Done: true, SetNumber: 2},
		},
	}
}

func mustRecordsJSON(t *testing.T, records []models.SetRecord) string {
	t.Helper()
	payload, err := json.Marshal(records)
	require.NoError(t, err)
	return string(payload)
}

func TestPendingWriteRepository_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	queue := newTestQueue(t, db, now)

	item := benchPressItem()
	query, _, err := buildUpsertPendingWriteQuery(
		item.Key(), item.OwnerID, item.Date, item.ExerciseName,
		mustRecordsJSON(t, item.Records), now,
	)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(
			item.Key(), item.OwnerID, item.Date, item.ExerciseName,
			mustRecordsJSON(t, item.Records), now,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, queue.Upsert(testContext(), item))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingWriteRepository_Upsert_PreservesExplicitCreatedAt(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	item := benchPressItem()
	item.CreatedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO pending_writes").
		WithArgs(
			item.Key(), item.OwnerID, item.Date, item.ExerciseName,
			mustRecordsJSON(t, item.Records), item.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, queue.Upsert(testContext(), item))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingWriteRepository_Upsert_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	mock.ExpectExec("INSERT INTO pending_writes").
		WillReturnError(errors.New("disk I/O error"))

	err := queue.Upsert(testContext(), benchPressItem())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert pending write")
}

func TestPendingWriteRepository_Remove(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	item := benchPressItem()
	mock.ExpectExec("DELETE FROM pending_writes").
		WithArgs(item.Key()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, queue.Remove(testContext(), item))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingWriteRepository_Remove_MissingKeyIsNoop(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	// Zero rows affected is still success: removing an absent key is a no-op.
	mock.ExpectExec("DELETE FROM pending_writes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, queue.Remove(testContext(), benchPressItem()))
}

func TestPendingWriteRepository_Get_Found(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	item := benchPressItem()
	item.CreatedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(pendingWriteColumns).
		AddRow(item.Key(), item.OwnerID, item.Date, item.ExerciseName,
			mustRecordsJSON(t, item.Records), item.CreatedAt)

	mock.ExpectQuery("SELECT (.+) FROM pending_writes").
		WithArgs(item.Key()).
		WillReturnRows(rows)

	got, found, err := queue.Get(testContext(), item.OwnerID, item.Date, item.ExerciseName)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, item, got)
}

func TestPendingWriteRepository_Get_KeyIsCaseInsensitive(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	item := benchPressItem()
	mock.ExpectQuery("SELECT (.+) FROM pending_writes").
		WithArgs(models.PendingWriteKey(1, "2024-05-01", "bench press")).
		WillReturnRows(sqlmock.NewRows(pendingWriteColumns).
			AddRow(item.Key(), item.OwnerID, item.Date, item.ExerciseName,
				mustRecordsJSON(t, item.Records), time.Now()))

	_, found, err := queue.Get(testContext(), 1, "2024-05-01", "  BENCH PRESS ")
	require.NoError(t, err)
	assert.True(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingWriteRepository_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM pending_writes").
		WillReturnError(sql.ErrNoRows)

	_, found, err := queue.Get(testContext(), 1, "2024-05-01", "Deadlift")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPendingWriteRepository_All(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	first := benchPressItem()
	first.CreatedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	second := models.PendingWrite{
		OwnerID:      1,
		Date:         "2024-05-01",
		ExerciseName: "Squat",
		Records:      []models.SetRecord{{Weight: 100, Reps: 5, Done: true, SetNumber: 1}},
		CreatedAt:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	rows := sqlmock.NewRows(pendingWriteColumns)
	for _, item := range []models.PendingWrite{first, second} {
		rows.AddRow(item.Key(), item.OwnerID, item.Date, item.ExerciseName,
			mustRecordsJSON(t, item.Records), item.CreatedAt)
	}

	mock.ExpectQuery("SELECT (.+) FROM pending_writes").
		WillReturnRows(rows)

	items, err := queue.All(testContext())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0])
	assert.Equal(t, second, items[1])
}

func TestPendingWriteRepository_All_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM pending_writes").
		WillReturnRows(sqlmock.NewRows(pendingWriteColumns))

	items, err := queue.All(testContext())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPendingWriteRepository_AllForDay(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	item := benchPressItem()
	item.CreatedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(pendingWriteColumns).
		AddRow(item.Key(), item.OwnerID, item.Date, item.ExerciseName,
			mustRecordsJSON(t, item.Records), item.CreatedAt)

	mock.ExpectQuery("SELECT (.+) FROM pending_writes").
		WithArgs("2024-05-01", int64(1)).
		WillReturnRows(rows)

	items, err := queue.AllForDay(testContext(), 1, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestPendingWriteRepository_All_MalformedRecords(t *testing.T) {
	db, mock := newTestDB(t)
	queue := newTestQueue(t, db, time.Now())

	rows := sqlmock.NewRows(pendingWriteColumns).
		AddRow("k", int64(1), "2024-05-01", "Bench Press", "{not json", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM pending_writes").
		WillReturnRows(rows)

	_, err := queue.All(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode pending write records")
}
