// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{} // keys the loader looked up, set or not
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envBool(key string, defaultVal bool) bool {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseBool(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

func (l *Loader) envDuration(key string, defaultVal time.Duration) time.Duration {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseDuration(key, defaultVal)
}

func (l *Loader) envFloat(key string, defaultVal float64) float64 {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseFloat(key, defaultVal)
}

func (l *Loader) envList(key string, defaultVal []string) []string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseStringList(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Defaults,
// then resolves derived paths and validates the result.
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		if err := l.loadFile(l.configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnvConfig(&cfg)

	if abs, err := filepath.Abs(cfg.DataDir); err == nil {
		cfg.DataDir = abs
	}
	if cfg.Store.Path == "" {
		switch cfg.Store.Backend {
		case StoreSQLite:
			cfg.Store.Path = filepath.Join(cfg.DataDir, "vodmeta.db")
		case StoreBadger:
			cfg.Store.Path = filepath.Join(cfg.DataDir, "badger")
		}
	}

	cfg.Version = l.version

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadFile decodes the YAML file at path over cfg with STRICT parsing.
// Keys absent from the file keep their current value.
func (l *Loader) loadFile(path string, cfg *AppConfig) error {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("%w: %s (only YAML supported)", ErrUnsupportedFormat, ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("strict config parse error: %w: %v", ErrUnknownConfigField, err)
		}
		return fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("config file contains multiple documents or trailing content")
	}
	return nil
}

// mergeEnvConfig applies environment overrides on top of cfg.
func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.DataDir = l.envString(EnvDataDir, cfg.DataDir)
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
	cfg.LogService = l.envString(EnvLogService, cfg.LogService)

	cfg.API.ListenAddr = l.envString(EnvListen, cfg.API.ListenAddr)
	cfg.API.AllowedOrigins = l.envList(EnvAllowedOrigins, cfg.API.AllowedOrigins)
	cfg.API.RateLimit.Enabled = l.envBool(EnvRateLimitEnabled, cfg.API.RateLimit.Enabled)
	cfg.API.RateLimit.RequestsPerMinute = l.envInt(EnvRateLimitPerMin, cfg.API.RateLimit.RequestsPerMinute)

	cfg.Server.ReadTimeout = l.envDuration(EnvReadTimeout, cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = l.envDuration(EnvWriteTimeout, cfg.Server.WriteTimeout)
	cfg.Server.IdleTimeout = l.envDuration(EnvIdleTimeout, cfg.Server.IdleTimeout)
	cfg.Server.MaxHeaderBytes = l.envInt(EnvMaxHeaderBytes, cfg.Server.MaxHeaderBytes)
	cfg.Server.ShutdownTimeout = l.envDuration(EnvShutdownTimeout, cfg.Server.ShutdownTimeout)

	cfg.Store.Backend = l.envString(EnvStoreBackend, cfg.Store.Backend)
	cfg.Store.Path = l.envString(EnvStorePath, cfg.Store.Path)
	cfg.Store.DSN = l.envString(EnvStoreDSN, cfg.Store.DSN)

	cfg.Cache.Backend = l.envString(EnvCacheBackend, cfg.Cache.Backend)
	cfg.Cache.TTL = l.envDuration(EnvCacheTTL, cfg.Cache.TTL)
	cfg.Cache.Redis.Addr = l.envString(EnvRedisAddr, cfg.Cache.Redis.Addr)
	cfg.Cache.Redis.Password = l.envString(EnvRedisPassword, cfg.Cache.Redis.Password)
	cfg.Cache.Redis.DB = l.envInt(EnvRedisDB, cfg.Cache.Redis.DB)

	cfg.Metrics.Enabled = l.envBool(EnvMetricsEnabled, cfg.Metrics.Enabled)
	cfg.Metrics.ListenAddr = l.envString(EnvMetricsListen, cfg.Metrics.ListenAddr)

	cfg.Tracing.Enabled = l.envBool(EnvTracingEnabled, cfg.Tracing.Enabled)
	cfg.Tracing.Exporter = l.envString(EnvTracingExporter, cfg.Tracing.Exporter)
	cfg.Tracing.Endpoint = l.envString(EnvTracingEndpoint, cfg.Tracing.Endpoint)
	cfg.Tracing.SamplingRate = l.envFloat(EnvTracingSampleRate, cfg.Tracing.SamplingRate)
	cfg.Tracing.Environment = l.envString(EnvTracingEnv, cfg.Tracing.Environment)

	cfg.Seed.Enabled = l.envBool(EnvSeedEnabled, cfg.Seed.Enabled)
}
