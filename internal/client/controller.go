// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akhmedov/repsync/internal/adapter"
	"github.com/akhmedov/repsync/internal/config"
	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/internal/service"
	"github.com/akhmedov/repsync/internal/store"
	"github.com/akhmedov/repsync/models"
)

// Controller is the seam between the terminal UI and the sync core. Every
// intent coming from the UI loop (an edit, a day switch, a manual sync) flows
// through here, so the write path stays in one place: mutate the session,
// snapshot the touched exercise, enqueue, trigger a flush.
type Controller struct {
	cfg      config.ClientConfig
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	services *service.ClientServices
	logger   *logger.Logger

	days        []models.DayProgram
	activeDayID string

	// today is swappable in tests
	today func() string
}

// NewController wires a controller over already-constructed dependencies.
func NewController(
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	services *service.ClientServices,
	log *logger.Logger,
) *Controller {
	return &Controller{
		cfg:      cfg,
		storages: storages,
		adapter:  serverAdapter,
		services: services,
		logger:   log,
		today:    func() string { return time.Now().Format("2006-01-02") },
	}
}

// LoadToday prepares the session for the current calendar day: fetch the
// active plan (falling back to the bundled program offline), restore the last
// selected day, prefill from the most recent logged workout, then replay any
// queued snapshots on top. The merge order is fixed: prefill first, queued
// edits last, so unsynced local work always wins.
func (c *Controller) LoadToday(ctx context.Context) error {
	plan, err := c.adapter.ActivePlan(ctx, c.cfg.App.OwnerID)
	if err != nil || len(plan.Days) == 0 {
		if err != nil {
			c.logger.Warn().Err(err).Msg("active plan unavailable, using bundled program")
		}
		plan.Days = DefaultProgram()
	}
	c.days = plan.Days

	dayID, err := c.storages.Preferences.LastDay(ctx, c.cfg.App.OwnerID)
	if err != nil {
		c.logger.Warn().Err(err).Msg("reading last selected day failed, using first day")
		dayID = ""
	}

	return c.activateDay(ctx, c.pickDay(dayID))
}

// SelectDay switches the session to another day of the plan and persists the
// choice. Queued snapshots of the previous day stay queued; the background
// flush drains them regardless of which day is on screen.
func (c *Controller) SelectDay(ctx context.Context, dayID string) error {
	day, ok := c.dayByID(dayID)
	if !ok {
		return fmt.Errorf("unknown day id %q", dayID)
	}

	if err := c.storages.Preferences.SaveLastDay(ctx, c.cfg.App.OwnerID, dayID); err != nil {
		c.logger.Warn().Err(err).Msg("persisting day selection failed")
	}
	return c.activateDay(ctx, day)
}

func (c *Controller) activateDay(ctx context.Context, day models.DayProgram) error {
	session := service.NewSession(c.today(), day)

	session = c.prefill(ctx, session, day)

	session, err := c.services.Reconciler.ReplayQueued(ctx, session, c.cfg.App.OwnerID)
	if err != nil {
		return fmt.Errorf("replay queued snapshots: %w", err)
	}

	c.activeDayID = day.DayID
	c.services.Session.Replace(session)
	c.services.Tracker.Reset()
	return nil
}

// prefill merges the most recent logged records into a fresh session. The
// remote call failing just means empty defaults; that is not an error.
func (c *Controller) prefill(ctx context.Context, session models.Session, day models.DayProgram) models.Session {
	if len(day.Exercises) == 0 {
		return session
	}

	names := make([]string, 0, len(day.Exercises))
	for _, ex := range day.Exercises {
		names = append(names, ex.Name)
	}

	last, err := c.adapter.LastWorkoutSets(ctx, models.LastWorkoutRequest{
		OwnerID:       c.cfg.App.OwnerID,
		ExerciseNames: names,
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("last workout unavailable, starting from empty sets")
		return session
	}

	byName := make(map[string][]models.SetRecord, len(last.Exercises))
	for _, hist := range last.Exercises {
		byName[hist.ExerciseName] = hist.Records
	}
	return c.services.Reconciler.ApplyInitialRecords(session, byName)
}

func (c *Controller) pickDay(dayID string) models.DayProgram {
	if day, ok := c.dayByID(dayID); ok {
		return day
	}
	if len(c.days) > 0 {
		return c.days[0]
	}
	return models.DayProgram{}
}

func (c *Controller) dayByID(dayID string) (models.DayProgram, bool) {
	for _, day := range c.days {
		if day.DayID == dayID {
			return day, true
		}
	}
	return models.DayProgram{}, false
}

// Session returns the current session value for rendering.
func (c *Controller) Session() models.Session {
	return c.services.Session.Current()
}

// Days returns the plan's days for the day switcher.
func (c *Controller) Days() []models.DayProgram {
	return c.days
}

// ActiveDayID returns the id of the day currently on screen.
func (c *Controller) ActiveDayID() string {
	return c.activeDayID
}

// SetWeight applies a weight edit and enqueues the exercise-day.
func (c *Controller) SetWeight(ctx context.Context, setID string, weight float64) {
	c.applyEdit(ctx, func(s models.Session) (models.Session, string) {
		return service.SetWeight(s, setID, weight)
	})
}

// SetReps applies a reps edit and enqueues the exercise-day.
func (c *Controller) SetReps(ctx context.Context, setID string, reps int) {
	c.applyEdit(ctx, func(s models.Session) (models.Session, string) {
		return service.SetReps(s, setID, reps)
	})
}

// ToggleDone flips a set's done flag and enqueues the exercise-day.
func (c *Controller) ToggleDone(ctx context.Context, setID string) {
	c.applyEdit(ctx, func(s models.Session) (models.Session, string) {
		return service.ToggleDone(s, setID)
	})
}

// AddSet appends a set to the exercise and enqueues the exercise-day.
func (c *Controller) AddSet(ctx context.Context, exerciseID string) {
	c.applyEdit(ctx, func(s models.Session) (models.Session, string) {
		return service.AddSet(s, exerciseID)
	})
}

// RemoveSet drops the exercise's tail set and enqueues the exercise-day.
func (c *Controller) RemoveSet(ctx context.Context, exerciseID string) {
	c.applyEdit(ctx, func(s models.Session) (models.Session, string) {
		return service.RemoveSet(s, exerciseID)
	})
}

// applyEdit runs one session mutation and pushes the touched exercise through
// the write path. A mutation that touched nothing, or left every set at its
// last-synced values with nothing queued, produces no queue traffic.
func (c *Controller) applyEdit(ctx context.Context, mutate func(models.Session) (models.Session, string)) {
	var exerciseID string
	session := c.services.Session.Update(func(s models.Session) (out models.Session) {
		out, exerciseID = mutate(s)
		return out
	})
	if exerciseID == "" {
		return
	}

	changed := false
	for _, st := range session.SetsForExercise(exerciseID) {
		if c.services.Tracker.Changed(st) {
			changed = true
			break
		}
	}

	ex, ok := session.ExerciseByID(exerciseID)
	if !ok {
		return
	}
	if !changed && !c.services.SyncEngine.Dirty(ctx, c.cfg.App.OwnerID, session.Date, ex.Name) {
		return
	}

	snapshot, ok := service.BuildSnapshot(session, exerciseID, c.cfg.App.OwnerID)
	if !ok {
		return
	}
	if err := c.storages.PendingWrites.Upsert(ctx, snapshot); err != nil {
		// the edit stays visible in the session; it is only not durable yet
		c.logger.Error().Err(err).
			Str("exercise", snapshot.ExerciseName).
			Msg("enqueue snapshot failed")
		return
	}

	go c.services.SyncEngine.Flush(context.WithoutCancel(ctx), c.cfg.App.OwnerID)
}

// SyncNow runs one foreground flush cycle.
func (c *Controller) SyncNow(ctx context.Context) service.FlushResult {
	return c.services.SyncEngine.Flush(ctx, c.cfg.App.OwnerID)
}

// PendingCount returns the number of exercise-days still awaiting
// transmission, across all days.
func (c *Controller) PendingCount(ctx context.Context) int {
	items, err := c.storages.PendingWrites.All(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("counting pending snapshots failed")
		return 0
	}
	return len(items)
}

// Summary renders a plain-text recap of the day's completed sets, for
// sharing with a coach.
func (c *Controller) Summary() string {
	session := c.Session()

	var b strings.Builder
	fmt.Fprintf(&b, "Workout %s\n", session.Date)
	for _, ex := range session.Exercises {
		logged := false
		for _, st := range session.SetsForExercise(ex.ID) {
			if !st.Done {
				continue
			}
			if !logged {
				fmt.Fprintf(&b, "%s\n", ex.Name)
				logged = true
			}
			fmt.Fprintf(&b, "  %d: %gx%d\n", st.SetNumber, st.Weight, st.Reps)
		}
	}
	return b.String()
}

// Preferences returns the stored user preferences.
func (c *Controller) Preferences(ctx context.Context) models.Preferences {
	prefs, err := c.storages.Preferences.Preferences(ctx, c.cfg.App.OwnerID)
	if err != nil {
		c.logger.Warn().Err(err).Msg("reading preferences failed, using defaults")
		return models.Preferences{}
	}
	return prefs
}

// SavePreferences persists the user preferences.
func (c *Controller) SavePreferences(ctx context.Context, prefs models.Preferences) {
	if err := c.storages.Preferences.SavePreferences(ctx, c.cfg.App.OwnerID, prefs); err != nil {
		c.logger.Warn().Err(err).Msg("saving preferences failed")
	}
}
