// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ManuGH/vodmeta/internal/api"
	"github.com/ManuGH/vodmeta/internal/config"
	"github.com/ManuGH/vodmeta/internal/health"
	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/ManuGH/vodmeta/internal/telemetry"
	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Runtime is a fully wired daemon ready to Run.
type Runtime struct {
	App     *App
	Manager Manager
	Stores  *StoreStack
	Health  *health.Manager
	Server  *api.Server
}

// Bootstrap performs startup checks, opens and seeds the store, and wires the
// HTTP servers. Resources acquired here are released by the manager's
// shutdown hooks; on error everything acquired so far is released.
func Bootstrap(ctx context.Context, cfg config.AppConfig) (_ *Runtime, err error) {
	logger := log.WithComponent("daemon")

	if err := health.PerformStartupChecks(ctx, cfg); err != nil {
		return nil, fmt.Errorf("startup checks: %w", err)
	}

	tp, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.LogService,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Tracing.Environment,
		ExporterType:   cfg.Tracing.Exporter,
		Endpoint:       cfg.Tracing.Endpoint,
		SamplingRate:   cfg.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tp.Shutdown(context.Background())
		}
	}()

	stores, err := OpenStoreStack(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err != nil {
			_ = stores.Close()
		}
	}()

	if cfg.Seed.Enabled {
		n, err := video.Seed(ctx, stores.Store)
		if err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
		logger.Info().
			Str(log.FieldEvent, "startup.seeded").
			Int(log.FieldCount, n).
			Msg("startup seeding finished")
	}

	svc, err := video.NewService(stores.Store)
	if err != nil {
		return nil, err
	}

	hm := health.NewManager(cfg.Version)
	hm.RegisterChecker(health.NewPingChecker("store", stores.Handle.Ping, 2*time.Second, true))
	if stores.Redis != nil {
		hm.RegisterChecker(health.NewPingChecker("cache", stores.Redis.HealthCheck, time.Second, false))
	}

	srv, err := api.New(api.Deps{Config: cfg, Videos: svc, Health: hm})
	if err != nil {
		return nil, err
	}

	deps := Deps{
		Logger:     log.WithComponent("daemon"),
		APIHandler: srv.Handler(),
	}
	if addr := config.MetricsAddr(cfg); addr != "" {
		deps.MetricsHandler = promhttp.Handler()
		deps.MetricsAddr = addr
	}

	mgr, err := NewManager(config.ServerConfigFor(cfg), deps)
	if err != nil {
		return nil, err
	}
	mgr.RegisterShutdownHook("telemetry", tp.Shutdown)
	mgr.RegisterShutdownHook("store", func(context.Context) error {
		return stores.Close()
	})

	return &Runtime{
		App:     NewApp(logger, mgr),
		Manager: mgr,
		Stores:  stores,
		Health:  hm,
		Server:  srv,
	}, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
