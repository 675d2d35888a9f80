// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ManuGH/vodmeta/internal/config"
	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/ManuGH/vodmeta/internal/videostore"
	"github.com/ManuGH/vodmeta/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if err != nil {
		errOut.WriteString(err.Error())
		code = 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
	}
	return code, out.String(), errOut.String()
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "vodmeta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, version.Version)
}

func TestExecute_UnknownCommand(t *testing.T) {
	assert.Equal(t, 1, execute(context.Background(), []string{"does-not-exist"}))
}

func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDataDir, dir)

	assert.Equal(t, "explicit.yaml", resolveConfigPath(" explicit.yaml "))
	assert.Empty(t, resolveConfigPath(""))

	auto := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(auto, []byte("logLevel: debug\n"), 0o600))
	assert.Equal(t, auto, resolveConfigPath(""))
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "store:\n  backend: cassandra\n")
	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestSeedThenVideos(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "dataDir: "+dir+"\nstore:\n  backend: sqlite\n")

	code, out, errOut := run(t, "seed", "--config", cfgPath)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "seeded 2 videos")

	code, out, _ = run(t, "seed", "--config", cfgPath)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "nothing to seed")

	code, out, errOut = run(t, "videos", "--json", "--config", cfgPath)
	require.Equal(t, 0, code, errOut)
	var videos []video.Video
	require.NoError(t, json.Unmarshal([]byte(out), &videos))
	require.Len(t, videos, 2)
	assert.Equal(t, "Video 1", videos[0].Title)
	assert.Equal(t, int64(2), videos[1].ID)

	code, out, _ = run(t, "videos", "--config", cfgPath)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Video 2")
	assert.Contains(t, out, "https://example.com/thumbnail2.jpg")
}

func TestStorageVerify(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		code, _, _ := run(t, "storage", "verify")
		assert.Equal(t, 2, code)
	})

	t.Run("invalid mode", func(t *testing.T) {
		code, _, errOut := run(t, "storage", "verify", "--path", "x.db", "--mode", "deep")
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "invalid mode")
	})

	t.Run("healthy database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vodmeta.db")
		h, err := videostore.Open(context.Background(), videostore.Config{Backend: videostore.BackendSQLite, Path: path})
		require.NoError(t, err)
		_, err = video.Seed(context.Background(), h.Store)
		require.NoError(t, err)
		require.NoError(t, h.Close())

		for _, mode := range []string{"quick", "full"} {
			code, out, errOut := run(t, "storage", "verify", "--path", path, "--mode", mode)
			assert.Equal(t, 0, code, errOut)
			assert.Contains(t, out, "integrity verified")
		}
	})

	t.Run("not a database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.db")
		require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 4096), 0o600))
		code, _, _ := run(t, "storage", "verify", "--path", path)
		assert.Equal(t, 1, code)
	})
}

func TestHealthcheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	code, out, _ := run(t, "healthcheck", "--mode", "live", "--host", host, "--port", portStr)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "healthcheck successful (live)")

	code, _, errOut := run(t, "healthcheck", "--host", host, "--port", strconv.Itoa(port))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "503")

	code, _, _ = run(t, "healthcheck", "--mode", "sideways")
	assert.Equal(t, 2, code)
}
