package client

import (
	"context"
	"fmt"

	"github.com/akhmedov/repsync/internal/adapter"
	"github.com/akhmedov/repsync/internal/config"
	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/internal/service"
	"github.com/akhmedov/repsync/internal/store"
	"github.com/akhmedov/repsync/internal/tui"
	"github.com/akhmedov/repsync/internal/workers"
)

// App owns the client process lifecycle: it wires storage, transport, the
// sync core, and the terminal UI, then runs them until the user quits.
type App struct {
	cfg        *config.ClientConfig
	services   *service.ClientServices
	controller *Controller
	ui         *tui.TUI
	logger     *logger.Logger
}

// NewApp builds the full client dependency graph from a validated config.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, log)
	controller := NewController(*cfg, storages, serverAdapter, services, log)
	ui := tui.New(controller, log)

	return &App{
		cfg:        cfg,
		services:   services,
		controller: controller,
		ui:         ui,
		logger:     log,
	}, nil
}

// Run implements Client. It loads today's session, starts the background
// flush, and blocks in the UI loop until exit. Whatever is still queued at
// exit stays in SQLite and is drained on the next start.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.controller.LoadToday(ctx); err != nil {
		return fmt.Errorf("load today's session: %w", err)
	}

	workers.NewWorkers(
		workers.NewSyncWorker(ctx, a.services.SyncJob, a.cfg.App.OwnerID, a.cfg.Workers.SyncInterval),
	).Run()
	defer a.services.SyncJob.Stop()

	a.logger.Info().
		Int64("owner_id", a.cfg.App.OwnerID).
		Str("day", a.controller.ActiveDayID()).
		Msg("client started")

	return a.ui.Run(ctx)
}
