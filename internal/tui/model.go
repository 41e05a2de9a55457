// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhmedov/repsync/internal/service"
	"github.com/akhmedov/repsync/models"
)

type editField int

const (
	editNone editField = iota
	editWeight
	editReps
)

type syncState int

const (
	syncIdle syncState = iota
	syncRunning
	syncFailed
)

type (
	syncDoneMsg struct{ result service.FlushResult }
	refreshMsg  time.Time
	dayMsg      struct{ err error }
)

// model is the single screen of the client: the active day's set grid.
type model struct {
	ctx        context.Context
	controller Controller

	cursor  int
	editing editField
	input   textinput.Model
	spinner spinner.Model

	sync    syncState
	pending int
	notice  string
}

func newModel(ctx context.Context, controller Controller) model {
	input := textinput.New()
	input.CharLimit = 7
	input.Width = 8

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		ctx:        ctx,
		controller: controller,
		cursor:     clampCursor(buildRows(controller.Session()), 0),
		input:      input,
		spinner:    sp,
		pending:    controller.PendingCount(ctx),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshTick())
}

// refreshTick keeps the status chip honest while the background job drains
// the queue.
func refreshTick() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateNavigation(msg)

	case syncDoneMsg:
		if msg.result.Status == service.FlushPartial {
			m.sync = syncFailed
		} else {
			m.sync = syncIdle
		}
		m.pending = m.controller.PendingCount(m.ctx)
		return m, nil

	case refreshMsg:
		m.pending = m.controller.PendingCount(m.ctx)
		if m.sync != syncRunning {
			if m.pending == 0 {
				m.sync = syncIdle
			}
			m.notice = ""
		}
		return m, refreshTick()

	case dayMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
		}
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := buildRows(m.controller.Session())

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.cursor = prevSetRow(rows, m.cursor)
	case "down", "j":
		m.cursor = nextSetRow(rows, m.cursor)

	case "w", "enter":
		if set, ok := cursorSet(rows, m.cursor); ok {
			m.editing = editWeight
			m.input.SetValue(trimZero(fmt.Sprintf("%g", set.Weight)))
			m.input.Focus()
		}
	case "r":
		if set, ok := cursorSet(rows, m.cursor); ok {
			m.editing = editReps
			m.input.SetValue(trimZero(strconv.Itoa(set.Reps)))
			m.input.Focus()
		}

	case " ":
		if set, ok := cursorSet(rows, m.cursor); ok {
			m.controller.ToggleDone(m.ctx, set.ID)
		}
	case "a":
		if set, ok := cursorSet(rows, m.cursor); ok {
			m.controller.AddSet(m.ctx, set.ExerciseID)
		}
	case "x":
		if set, ok := cursorSet(rows, m.cursor); ok {
			m.controller.RemoveSet(m.ctx, set.ExerciseID)
			m.cursor = clampCursor(buildRows(m.controller.Session()), m.cursor)
		}

	case "tab":
		return m, m.switchDay()

	case "s":
		m.sync = syncRunning
		return m, m.runSync()

	case "m":
		prefs := m.controller.Preferences(m.ctx)
		prefs.AlertsEnabled = !prefs.AlertsEnabled
		m.controller.SavePreferences(m.ctx, prefs)
		if prefs.AlertsEnabled {
			m.notice = "alerts on"
		} else {
			m.notice = "alerts off"
		}

	case "c":
		if err := clipboard.WriteAll(m.controller.Summary()); err != nil {
			m.notice = "clipboard unavailable"
		} else {
			m.notice = "summary copied"
		}
	}

	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = editNone
		m.input.Blur()
		return m, nil

	case "enter":
		rows := buildRows(m.controller.Session())
		set, ok := cursorSet(rows, m.cursor)
		if ok {
			m.commitEdit(set)
		}
		m.editing = editNone
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitEdit parses the input and applies it. Unparseable input is dropped
// silently; the previous value stays.
func (m model) commitEdit(set models.WorkoutSet) {
	raw := m.input.Value()
	switch m.editing {
	case editWeight:
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return
		}
		m.controller.SetWeight(m.ctx, set.ID, weight)
	case editReps:
		reps, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		m.controller.SetReps(m.ctx, set.ID, reps)
	}
}

func (m model) switchDay() tea.Cmd {
	days := m.controller.Days()
	if len(days) < 2 {
		return nil
	}
	active := m.controller.ActiveDayID()
	next := days[0]
	for i, day := range days {
		if day.DayID == active {
			next = days[(i+1)%len(days)]
			break
		}
	}
	ctx := m.ctx
	controller := m.controller
	return func() tea.Msg {
		return dayMsg{err: controller.SelectDay(ctx, next.DayID)}
	}
}

func (m model) runSync() tea.Cmd {
	ctx := m.ctx
	controller := m.controller
	return func() tea.Msg {
		return syncDoneMsg{result: controller.SyncNow(ctx)}
	}
}

func trimZero(s string) string {
	if s == "0" {
		return ""
	}
	return s
}
