package store

import (
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/models"
)

func newTestPreferences(t *testing.T, db *sql.DB) *preferencesRepository {
	t.Helper()
	return &preferencesRepository{
		DB:     newDBFromSQL(db),
		logger: logger.Nop(),
		now:    func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestPreferencesRepository_SaveLastDay(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPreferences(t, db)

	mock.ExpectExec("INSERT INTO preferences").
		WithArgs(int64(1), "day-2", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveLastDay(testContext(), 1, "day-2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesRepository_LastDay(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPreferences(t, db)

	mock.ExpectQuery("SELECT last_day_id FROM preferences").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"last_day_id"}).AddRow("day-3"))

	dayID, err := repo.LastDay(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, "day-3", dayID)
}

func TestPreferencesRepository_LastDay_NullColumn(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPreferences(t, db)

	mock.ExpectQuery("SELECT last_day_id FROM preferences").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"last_day_id"}).AddRow(nil))

	dayID, err := repo.LastDay(testContext(), 1)
	require.NoError(t, err)
	assert.Empty(t, dayID)
}

func TestPreferencesRepository_LastDay_NoneStored(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPreferences(t, db)

	mock.ExpectQuery("SELECT last_day_id FROM preferences").
		WillReturnError(sql.ErrNoRows)

	dayID, err := repo.LastDay(testContext(), 1)
	require.NoError(t, err)
	assert.Empty(t, dayID)
}

func TestPreferencesRepository_PreferencesRoundTrip(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPreferences(t, db)

	prefs := models.Preferences{RestTimerSound: "bell", AlertsEnabled: true}

	mock.ExpectExec("INSERT INTO preferences").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.SavePreferences(testContext(), 1, prefs))

	mock.ExpectQuery("SELECT preferences_blob FROM preferences").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"preferences_blob"}).
			AddRow(`{"rest_timer_sound":"bell","alerts_enabled":true}`))

	got, err := repo.Preferences(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}

func TestPreferencesRepository_Preferences_NullBlob(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPreferences(t, db)

	// SaveLastDay can create the row before any preferences were saved.
	mock.ExpectQuery("SELECT preferences_blob FROM preferences").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"preferences_blob"}).AddRow(nil))

	got, err := repo.Preferences(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.Preferences{}, got)
}

func TestPreferencesRepository_Preferences_NoneStored(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPreferences(t, db)

	mock.ExpectQuery("SELECT preferences_blob FROM preferences").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Preferences(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.Preferences{}, got)
}
