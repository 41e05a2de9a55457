// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

// Package devserver is a stub of the coaching API for local development: the
// three endpoints the client consumes, backed by an in-memory store. State
// does not survive a restart; that is enough to exercise the full sync loop
// against a real HTTP boundary.
package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/models"
)

type Handler struct {
	store  *memoryStore
	logger *logger.Logger
}

// NewHandler creates a stub API handler serving the given plan.
func NewHandler(plan models.ActivePlanResponse, logger *logger.Logger) *Handler {
	logger.Info().Msg("devserver handler created")
	return &Handler{
		store:  newMemoryStore(plan),
		logger: logger,
	}
}

func (h *Handler) activePlan(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(r.URL.Query().Get("owner_id"), 10, 64)
	if err != nil || ownerID <= 0 {
		h.logger.Error().Str("func", "*Handler.activePlan").Msg("missing or invalid owner_id")
		http.Error(w, "missing or invalid owner_id", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.store.activePlan(), http.StatusOK)
}

func (h *Handler) lastWorkout(w http.ResponseWriter, r *http.Request) {
	var req models.LastWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Err(err).Str("func", "*Handler.lastWorkout").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.OwnerID <= 0 {
		http.Error(w, "missing or invalid owner_id", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.store.lastWorkout(req), http.StatusOK)
}

func (h *Handler) upsertDailyRecord(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertDailyRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Err(err).Str("func", "*Handler.upsertDailyRecord").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.OwnerID <= 0 || req.Date == "" || req.ExerciseName == "" {
		http.Error(w, "owner_id, date and exercise_name are required", http.StatusBadRequest)
		return
	}

	records := h.store.upsertDay(req)
	h.logger.Info().
		Int64("owner_id", req.OwnerID).
		Str("date", req.Date).
		Str("exercise", req.ExerciseName).
		Int("records", len(records)).
		Msg("exercise-day upserted")

	h.writeJSON(w, models.UpsertDailyRecordResponse{Records: records}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Err(err).Msg("writing response body failed")
	}
}
