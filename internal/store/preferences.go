package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/models"
)

type preferencesRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferencesRepository constructs the SQLite-backed preferences store.
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (p *preferencesRepository) SaveLastDay(ctx context.Context, ownerID int64, dayID string) error {
	query, args, err := sq.Insert("preferences").
		Columns("owner_id", "last_day_id", "updated_at").
		Values(ownerID, dayID, p.now().UTC()).
		Suffix(`ON CONFLICT(owner_id) DO UPDATE SET
			last_day_id = excluded.last_day_id,
			updated_at  = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build last day upsert query: %w", err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).
			Str("func", "preferencesRepository.SaveLastDay").
			Int64("owner_id", ownerID).
			Msg("failed to save last selected day")
		return fmt.Errorf("failed to save last day (owner_id=%d): %w", ownerID, err)
	}

	return nil
}

func (p *preferencesRepository) LastDay(ctx context.Context, ownerID int64) (string, error) {
	query, args, err := sq.Select("last_day_id").
		From("preferences").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build last day query: %w", err)
	}

	// the row may exist with only the preferences blob set
	var dayID sql.NullString
	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&dayID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load last day (owner_id=%d): %w", ownerID, err)
	}

	return dayID.String, nil
}

func (p *preferencesRepository) SavePreferences(ctx context.Context, ownerID int64, prefs models.Preferences) error {
	blob, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	query, args, err := sq.Insert("preferences").
		Columns("owner_id", "preferences_blob", "updated_at").
		Values(ownerID, string(blob), p.now().UTC()).
		Suffix(`ON CONFLICT(owner_id) DO UPDATE SET
			preferences_blob = excluded.preferences_blob,
			updated_at       = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build preferences upsert query: %w", err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).
			Str("func", "preferencesRepository.SavePreferences").
			Int64("owner_id", ownerID).
			Msg("failed to save preferences")
		return fmt.Errorf("failed to save preferences (owner_id=%d): %w", ownerID, err)
	}

	return nil
}

func (p *preferencesRepository) Preferences(ctx context.Context, ownerID int64) (models.Preferences, error) {
	query, args, err := sq.Select("preferences_blob").
		From("preferences").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to build preferences query: %w", err)
	}

	// the row may exist with only the last selected day set
	var blob sql.NullString
	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Preferences{}, nil
		}
		return models.Preferences{}, fmt.Errorf("failed to load preferences (owner_id=%d): %w", ownerID, err)
	}
	if !blob.Valid || blob.String == "" {
		return models.Preferences{}, nil
	}

	var prefs models.Preferences
	if err = json.Unmarshal([]byte(blob.String), &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return prefs, nil
}
