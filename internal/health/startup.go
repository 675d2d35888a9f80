// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/vodmeta/internal/config"
	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/rs/zerolog"
)

// PerformStartupChecks validates the environment before the store is opened.
// The data directory is created when missing and must be writable.
func PerformStartupChecks(_ context.Context, cfg config.AppConfig) error {
	logger := log.WithComponent("startup-check")
	logger.Info().Str(log.FieldEvent, "startup.checks_begin").Msg("running pre-flight startup checks")

	if err := checkDataDir(logger, cfg.DataDir); err != nil {
		return fmt.Errorf("data directory check failed: %w", err)
	}
	if err := checkStore(logger, cfg); err != nil {
		return fmt.Errorf("store check failed: %w", err)
	}

	logger.Info().Str(log.FieldEvent, "startup.checks_passed").Msg("all startup checks passed")
	return nil
}

func checkDataDir(logger zerolog.Logger, path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	testFile := filepath.Join(path, ".write_test")
	if err := os.WriteFile(testFile, []byte("ok"), 0o600); err != nil {
		return fmt.Errorf("directory is not writable: %s (error: %v)", path, err)
	}
	_ = os.Remove(testFile)

	logger.Debug().Str("path", path).Msg("data directory is writable")
	return nil
}

func checkStore(logger zerolog.Logger, cfg config.AppConfig) error {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		logger.Warn().
			Str(log.FieldBackend, cfg.Store.Backend).
			Msg("in-memory store; videos are not persistent across restarts")
	case config.StoreSQLite, config.StoreBadger:
		if cfg.Store.Path == "" {
			return fmt.Errorf("%s backend requires a path", cfg.Store.Backend)
		}
		tempDir := filepath.Clean(os.TempDir())
		storePath := filepath.Clean(cfg.Store.Path)
		if tempDir != "." && strings.HasPrefix(storePath, tempDir+string(filepath.Separator)) {
			logger.Warn().
				Str("store_path", cfg.Store.Path).
				Msg("store is under the temp directory; videos may be lost on reboot")
		}
	case config.StorePostgres:
		if cfg.Store.DSN == "" {
			return fmt.Errorf("postgres backend requires a dsn")
		}
	}
	return nil
}
