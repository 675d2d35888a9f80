// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ManuGH/vodmeta/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChecker struct {
	name   string
	status Status
}

func (m *mockChecker) Name() string { return m.name }

func (m *mockChecker) Check(context.Context) CheckResult {
	return CheckResult{Status: m.status}
}

func TestManager_Health(t *testing.T) {
	m := NewManager("v1.0.0")

	resp := m.Health(context.Background(), false)
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Equal(t, "v1.0.0", resp.Version)
	assert.Nil(t, resp.Checks)

	m.RegisterChecker(&mockChecker{name: "store", status: StatusHealthy})
	m.RegisterChecker(&mockChecker{name: "cache", status: StatusDegraded})

	resp = m.Health(context.Background(), false)
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Nil(t, resp.Checks)

	resp = m.Health(context.Background(), true)
	assert.Equal(t, StatusDegraded, resp.Status)
	assert.Len(t, resp.Checks, 2)
}

func TestManager_Ready(t *testing.T) {
	m := NewManager("v1.0.0")
	assert.True(t, m.Ready(context.Background()).Ready)

	m.RegisterChecker(&mockChecker{name: "cache", status: StatusDegraded})
	resp := m.Ready(context.Background())
	assert.True(t, resp.Ready)
	assert.Equal(t, StatusDegraded, resp.Status)

	m.RegisterChecker(&mockChecker{name: "store", status: StatusUnhealthy})
	resp = m.Ready(context.Background())
	assert.False(t, resp.Ready)
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, StatusUnhealthy, resp.Checks["store"].Status)
}

func TestServeHealth_AlwaysOK(t *testing.T) {
	m := NewManager("v1.0.0")
	m.RegisterChecker(&mockChecker{name: "store", status: StatusUnhealthy})

	rec := httptest.NewRecorder()
	m.ServeHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz?verbose=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusUnhealthy, resp.Status)
}

func TestServeReady_StatusCodes(t *testing.T) {
	var storeErr error
	m := NewManager("v1.0.0")
	m.RegisterChecker(NewPingChecker("store", func(context.Context) error { return storeErr }, 0, true))

	rec := httptest.NewRecorder()
	m.ServeReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	storeErr = errors.New("database is closed")
	rec = httptest.NewRecorder()
	m.ServeReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Ready)
	assert.Equal(t, "database is closed", resp.Checks["store"].Error)
}

func TestPingChecker(t *testing.T) {
	failing := func(context.Context) error { return errors.New("down") }

	assert.Equal(t, StatusUnhealthy, NewPingChecker("store", failing, 0, true).Check(context.Background()).Status)
	assert.Equal(t, StatusDegraded, NewPingChecker("cache", failing, 0, false).Check(context.Background()).Status)

	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	res := NewPingChecker("slow", slow, 10*time.Millisecond, true).Check(context.Background())
	assert.Equal(t, StatusUnhealthy, res.Status)
	assert.Contains(t, res.Error, "deadline exceeded")

	ok := NewPingChecker("store", func(context.Context) error { return nil }, 0, true)
	assert.Equal(t, "store", ok.Name())
	assert.Equal(t, StatusHealthy, ok.Check(context.Background()).Status)
}

func TestPerformStartupChecks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	cfg := config.Defaults()
	cfg.DataDir = dir
	cfg.Store.Path = filepath.Join(dir, "vodmeta.db")

	require.NoError(t, PerformStartupChecks(context.Background(), cfg))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg.Store.Path = ""
	assert.Error(t, PerformStartupChecks(context.Background(), cfg))

	cfg.Store.Backend = config.StorePostgres
	assert.Error(t, PerformStartupChecks(context.Background(), cfg))

	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	cfg = config.Defaults()
	cfg.DataDir = file
	assert.Error(t, PerformStartupChecks(context.Background(), cfg))
}
