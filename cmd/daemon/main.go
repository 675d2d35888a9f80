// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Command vodmeta serves the video metadata API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/vodmeta/internal/config"
	"github.com/ManuGH/vodmeta/internal/daemon"
	vlog "github.com/ManuGH/vodmeta/internal/log"
	"github.com/ManuGH/vodmeta/internal/version"
	"github.com/spf13/cobra"
)

// exitError carries a specific process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:]))
}

func execute(ctx context.Context, args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		showVersion bool
	)

	root := &cobra.Command{
		Use:           "vodmeta",
		Short:         "Video-on-demand metadata service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runDaemon(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (YAML)")
	root.Flags().BoolVar(&showVersion, "version", false, "print version and exit")

	root.AddCommand(
		newSeedCmd(&configPath),
		newVideosCmd(&configPath),
		newStorageCmd(),
		newHealthcheckCmd(),
	)
	return root
}

// resolveConfigPath returns the explicit path, or $VODMETA_DATA_DIR/config.yaml
// when that file exists.
func resolveConfigPath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	dataDir := strings.TrimSpace(os.Getenv(config.EnvDataDir))
	if dataDir == "" {
		return ""
	}
	auto := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(auto); err == nil {
		return auto
	}
	return ""
}

func loadConfig(explicitPath string) (config.AppConfig, error) {
	vlog.Configure(vlog.Config{
		Level:   "info",
		Service: "vodmeta",
		Version: version.Version,
	})
	logger := vlog.WithComponent("cli")

	path := resolveConfigPath(explicitPath)
	cfg, err := config.NewLoader(path, version.Version).Load()
	if err != nil {
		logger.Error().
			Err(err).
			Str(vlog.FieldEvent, "config.load_failed").
			Str("config_path", path).
			Msg("failed to load configuration")
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	vlog.Configure(vlog.Config{
		Level:   cfg.LogLevel,
		Service: cfg.LogService,
		Version: cfg.Version,
	})

	logger = vlog.WithComponent("cli")
	if path != "" {
		logger.Info().
			Str(vlog.FieldEvent, "config.loaded").
			Str("source", "file").
			Str("path", path).
			Msg("loaded configuration from file")
	} else {
		logger.Info().
			Str(vlog.FieldEvent, "config.loaded").
			Str("source", "env+defaults").
			Msg("loaded configuration from environment and defaults")
	}
	return cfg, nil
}

func runDaemon(ctx context.Context, cfg config.AppConfig) error {
	logger := vlog.WithComponent("daemon")

	ctx, stop := daemon.SignalContext(ctx)
	defer stop()

	rt, err := daemon.Bootstrap(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Str(vlog.FieldEvent, "bootstrap.failed").Msg("failed to start vodmeta")
		return err
	}

	logger.Info().
		Str(vlog.FieldEvent, "daemon.starting").
		Str("version", cfg.Version).
		Str("listen", cfg.API.ListenAddr).
		Str(vlog.FieldBackend, cfg.Store.Backend).
		Msg("starting vodmeta")

	if err := rt.App.Run(ctx); err != nil {
		logger.Error().Err(err).Str(vlog.FieldEvent, "daemon.failed").Msg("daemon stopped with error")
		return err
	}
	logger.Info().Str(vlog.FieldEvent, "daemon.stopped").Msg("server exiting")
	return nil
}
