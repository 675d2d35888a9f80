// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package sqlite

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesWALMode(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "wal.sqlite"), DefaultConfig())
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode;").Scan(&mode))
	assert.Equal(t, "wal", strings.ToLower(mode))
}

func TestOpen_MissingDirectoryFails(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "x.sqlite"), DefaultConfig())
	assert.Error(t, err)
}

func TestVerifyIntegrity_HealthyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "healthy.sqlite")
	db, err := Open(dbPath, DefaultConfig())
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY, data TEXT);")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	for _, mode := range []string{"quick", "full"} {
		issues, err := VerifyIntegrity(dbPath, mode)
		require.NoError(t, err, mode)
		assert.Nil(t, issues, mode)
	}
}

func TestVerifyIntegrity_DetectsCorruption(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corruptible.sqlite")

	db, err := Open(dbPath, DefaultConfig())
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE test (id INTEGER PRIMARY KEY, data TEXT);")
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		_, err = db.Exec("INSERT INTO test (data) VALUES (?);", strings.Repeat("A", 100))
		require.NoError(t, err)
	}
	// fold the WAL back into the main file before corrupting it
	_, err = db.Exec("PRAGMA wal_checkpoint(TRUNCATE);")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	f, err := os.OpenFile(dbPath, os.O_RDWR, 0o644)
	require.NoError(t, err)
	garbage := make([]byte, 100)
	_, _ = rand.Read(garbage)
	_, err = f.WriteAt(garbage, 4096)
	require.NoError(t, f.Close())
	require.NoError(t, err)

	issues, err := VerifyIntegrity(dbPath, "full")
	if err != nil {
		// a badly damaged page can also fail the pragma outright
		return
	}
	assert.NotNil(t, issues, "corruption went undetected")
}
