// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

// Package tui renders the workout-logger screen: the day's exercises and
// sets, inline weight/reps editing, and a sync status chip. All state changes
// go through the controller; the model only holds view state.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/internal/service"
	"github.com/akhmedov/repsync/models"
)

// Controller is the seam the UI drives. Implemented by the client package.
type Controller interface {
	Session() models.Session
	Days() []models.DayProgram
	ActiveDayID() string
	SelectDay(ctx context.Context, dayID string) error

	SetWeight(ctx context.Context, setID string, weight float64)
	SetReps(ctx context.Context, setID string, reps int)
	ToggleDone(ctx context.Context, setID string)
	AddSet(ctx context.Context, exerciseID string)
	RemoveSet(ctx context.Context, exerciseID string)

	SyncNow(ctx context.Context) service.FlushResult
	PendingCount(ctx context.Context) int
	Summary() string

	Preferences(ctx context.Context) models.Preferences
	SavePreferences(ctx context.Context, prefs models.Preferences)
}

// TUI hosts the bubbletea program.
type TUI struct {
	controller Controller
	logger     *logger.Logger
}

func New(controller Controller, log *logger.Logger) *TUI {
	return &TUI{controller: controller, logger: log}
}

// Run blocks in the UI loop until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newModel(ctx, t.controller), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
