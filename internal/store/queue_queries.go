// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const pendingWritesTable = "pending_writes"

var pendingWriteColumns = []string{
	"key",
	"owner_id",
	"date",
	"exercise_name",
	"records",
	"created_at",
}

// buildUpsertPendingWriteQuery builds the keyed upsert. The conflict clause
// deliberately leaves created_at out of the update list: the first-enqueued
// timestamp survives every subsequent replace of the same key.
func buildUpsertPendingWriteQuery(key string, ownerID int64, date, exerciseName, records string, createdAt any) (string, []any, error) {
	return sq.Insert(pendingWritesTable).
		Columns(pendingWriteColumns...).
		Values(key, ownerID, date, exerciseName, records, createdAt).
		Suffix(`ON CONFLICT(key) DO UPDATE SET
			date          = excluded.date,
			exercise_name = excluded.exercise_name,
			records       = excluded.records`).
		ToSql()
}

func buildDeletePendingWriteQuery(key string) (string, []any, error) {
	return sq.Delete(pendingWritesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildGetPendingWriteQuery(key string) (string, []any, error) {
	return sq.Select(pendingWriteColumns...).
		From(pendingWritesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildAllPendingWritesQuery() (string, []any, error) {
	return sq.Select(pendingWriteColumns...).
		From(pendingWritesTable).
		OrderBy("created_at", "key").
		ToSql()
}

func buildPendingWritesForDayQuery(ownerID int64, date string) (string, []any, error) {
	return sq.Select(pendingWriteColumns...).
		From(pendingWritesTable).
		Where(sq.Eq{"owner_id": ownerID, "date": date}).
		OrderBy("created_at", "key").
		ToSql()
}
