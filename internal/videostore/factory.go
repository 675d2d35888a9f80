// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package videostore provides the concrete video.Store backends and the
// decorators layered on top of them.
package videostore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ManuGH/vodmeta/internal/video"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

var (
	// ErrUnknownBackend is returned for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown store backend")
	// ErrMissingDSN is returned when the postgres backend is selected without a DSN.
	ErrMissingDSN = errors.New("postgres backend requires a dsn")
)

// Config selects and locates a backend.
type Config struct {
	Backend string // memory|sqlite|badger|postgres
	Path    string // file (sqlite) or directory (badger)
	DSN     string // postgres connection string
}

// Handle is an opened backend.
type Handle struct {
	Store   video.Store
	Backend string

	closer func() error
	pinger func(context.Context) error
}

// Close releases the backend's resources.
func (h *Handle) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer()
}

// Ping reports whether the backend is reachable. Backends without a
// connection fall back to a Count round trip.
func (h *Handle) Ping(ctx context.Context) error {
	if h.pinger != nil {
		return h.pinger(ctx)
	}
	_, err := h.Store.Count(ctx)
	return err
}

// Open creates the store selected by cfg.
func Open(_ context.Context, cfg Config) (*Handle, error) {
	switch cfg.Backend {
	case BackendMemory:
		return &Handle{Store: NewMemoryStore(), Backend: BackendMemory}, nil

	case BackendSQLite, "":
		if err := ensureParentDir(cfg.Path); err != nil {
			return nil, err
		}
		s, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return &Handle{Store: s, Backend: BackendSQLite, closer: s.Close, pinger: s.Ping}, nil

	case BackendBadger:
		if cfg.Path != "" {
			if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
				return nil, fmt.Errorf("create badger dir: %w", err)
			}
		}
		s, err := OpenBadgerStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return &Handle{Store: s, Backend: BackendBadger, closer: s.Close}, nil

	case BackendPostgres:
		if cfg.DSN == "" {
			return nil, ErrMissingDSN
		}
		s, err := OpenPostgresStore(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Handle{Store: s, Backend: BackendPostgres, closer: s.Close, pinger: s.Ping}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}

func ensureParentDir(path string) error {
	if path == "" {
		return fmt.Errorf("sqlite backend requires a path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	return nil
}
