// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package daemon

import (
	"context"

	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runner is a long-lived background task owned by App. It must return when ctx is done.
type Runner func(ctx context.Context) error

// App runs the Manager alongside background runners and stops them all
// together when any of them fails or ctx is cancelled.
type App struct {
	logger  zerolog.Logger
	manager Manager
	runners map[string]Runner
}

// NewApp creates a new App orchestrator.
func NewApp(logger zerolog.Logger, manager Manager) *App {
	return &App{logger: logger, manager: manager, runners: make(map[string]Runner)}
}

// AddRunner registers a background task started by Run.
func (a *App) AddRunner(name string, r Runner) {
	a.runners[name] = r
}

// Run starts all owned subsystems and blocks until ctx is cancelled or a fatal error occurs.
func (a *App) Run(ctx context.Context) error {
	if a.manager == nil {
		return ErrMissingManager
	}

	g, ctx := errgroup.WithContext(ctx)

	for name, run := range a.runners {
		name, run := name, run
		g.Go(func() error {
			if err := run(ctx); err != nil {
				a.logger.Error().
					Err(err).
					Str(log.FieldEvent, "runner.failed").
					Str("runner", name).
					Msg("background runner failed")
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		err := a.manager.Start(ctx)
		if err != nil {
			_ = a.manager.Shutdown(context.Background())
		}
		return err
	})

	return g.Wait()
}
