// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		backend string
	}{
		{name: "memory", cfg: Config{Backend: BackendMemory}, backend: BackendMemory},
		{name: "sqlite", cfg: Config{Backend: BackendSQLite, Path: filepath.Join(dir, "nested", "videos.db")}, backend: BackendSQLite},
		{name: "empty backend defaults to sqlite", cfg: Config{Path: filepath.Join(dir, "default.db")}, backend: BackendSQLite},
		{name: "badger", cfg: Config{Backend: BackendBadger, Path: filepath.Join(dir, "badger")}, backend: BackendBadger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Open(ctx, tt.cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, h.Close()) }()

			assert.Equal(t, tt.backend, h.Backend)
			require.NoError(t, h.Ping(ctx))

			_, err = h.Store.Insert(ctx, sampleVideo("x", 1))
			require.NoError(t, err)
			n, err := h.Store.Count(ctx)
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Config{Backend: "mongodb"})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = Open(ctx, Config{Backend: BackendPostgres})
	assert.ErrorIs(t, err, ErrMissingDSN)

	_, err = Open(ctx, Config{Backend: BackendSQLite})
	assert.Error(t, err)
}
