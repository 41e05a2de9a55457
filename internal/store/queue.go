package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/models"
)

type pendingWriteRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPendingWriteQueue constructs the SQLite-backed pending-write queue.
func NewPendingWriteQueue(db *DB, logger *logger.Logger) PendingWriteQueue {
	return &pendingWriteRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (q *pendingWriteRepository) Upsert(ctx context.Context, item models.PendingWrite) error {
	log := logger.FromContext(ctx)

	records, err := json.Marshal(item.Records)
	if err != nil {
		return fmt.Errorf("failed to encode pending write records: %w", err)
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = q.now().UTC()
	}

	query, args, err := buildUpsertPendingWriteQuery(
		item.Key(), item.OwnerID, item.Date, item.ExerciseName, string(records), createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to build pending write upsert query: %w", err)
	}

	if _, err = q.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingWriteRepository.Upsert").
			Str("key", item.Key()).
			Msg("failed to execute pending write upsert")
		return fmt.Errorf("failed to upsert pending write (key=%s): %w", item.Key(), err)
	}

	return nil
}

func (q *pendingWriteRepository) Remove(ctx context.Context, item models.PendingWrite) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePendingWriteQuery(item.Key())
	if err != nil {
		return fmt.Errorf("failed to build pending write delete query: %w", err)
	}

	if _, err = q.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingWriteRepository.Remove").
			Str("key", item.Key()).
			Msg("failed to execute pending write delete")
		return fmt.Errorf("failed to remove pending write (key=%s): %w", item.Key(), err)
	}

	return nil
}

func (q *pendingWriteRepository) Get(ctx context.Context, ownerID int64, date, exerciseName string) (models.PendingWrite, bool, error) {
	log := logger.FromContext(ctx)

	key := models.PendingWriteKey(ownerID, date, exerciseName)
	query, args, err := buildGetPendingWriteQuery(key)
	if err != nil {
		return models.PendingWrite{}, false, fmt.Errorf("failed to build pending write get query: %w", err)
	}

	row := q.DB.QueryRowContext(ctx, query, args...)
	item, err := scanPendingWrite(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingWrite{}, false, nil
		}
		log.Err(err).
			Str("func", "pendingWriteRepository.Get").
			Str("key", key).
			Msg("failed to scan pending write row")
		return models.PendingWrite{}, false, fmt.Errorf("failed to get pending write (key=%s): %w", key, err)
	}

	return item, true, nil
}

func (q *pendingWriteRepository) All(ctx context.Context) ([]models.PendingWrite, error) {
	query, args, err := buildAllPendingWritesQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending writes query: %w", err)
	}
	return q.queryPendingWrites(ctx, "pendingWriteRepository.All", query, args)
}

func (q *pendingWriteRepository) AllForDay(ctx context.Context, ownerID int64, date string) ([]models.PendingWrite, error) {
	query, args, err := buildPendingWritesForDayQuery(ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to build pending writes for day query: %w", err)
	}
	return q.queryPendingWrites(ctx, "pendingWriteRepository.AllForDay", query, args)
}

func (q *pendingWriteRepository) queryPendingWrites(ctx context.Context, caller, query string, args []any) ([]models.PendingWrite, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to query pending writes")
		return nil, fmt.Errorf("failed to query pending writes: %w", err)
	}
	defer rows.Close()

	var items []models.PendingWrite
	for rows.Next() {
		item, scanErr := scanPendingWrite(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan pending write row")
			return nil, fmt.Errorf("failed to scan pending write row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending write rows: %w", rowsErr)
	}

	return items, nil
}

func scanPendingWrite(scan func(dest ...any) error) (models.PendingWrite, error) {
	var (
		item    models.PendingWrite
		key     string
		records string
	)

	if err := scan(&key, &item.OwnerID, &item.Date, &item.ExerciseName, &records, &item.CreatedAt); err != nil {
		return models.PendingWrite{}, err
	}

	if err := json.Unmarshal([]byte(records), &item.Records); err != nil {
		return models.PendingWrite{}, fmt.Errorf("failed to decode pending write records: %w", err)
	}

	return item, nil
}
