// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration

	// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header's keys and values
	MaxHeaderBytes int

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown
	ShutdownTimeout time.Duration
}

const (
	defaultReadTimeout     = 60 * time.Second
	defaultWriteTimeout    = 0 // 0 = no timeout
	defaultIdleTimeout     = 120 * time.Second
	defaultMaxHeaderBytes  = 1 << 20 // 1 MB
	defaultShutdownTimeout = 15 * time.Second
	minShutdownTimeout     = 3 * time.Second
	fallbackListenAddr     = ":8088"
)

// ServerConfigFor resolves the API server settings from a loaded AppConfig.
// Zero or out-of-range values fall back to defaults.
func ServerConfigFor(cfg AppConfig) ServerConfig {
	out := ServerConfig{
		ListenAddr:      strings.TrimSpace(cfg.API.ListenAddr),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		MaxHeaderBytes:  cfg.Server.MaxHeaderBytes,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	if out.ListenAddr == "" {
		out.ListenAddr = fallbackListenAddr
	}
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = defaultReadTimeout
	}
	if out.WriteTimeout < 0 {
		out.WriteTimeout = defaultWriteTimeout
	}
	if out.IdleTimeout <= 0 {
		out.IdleTimeout = defaultIdleTimeout
	}
	if out.MaxHeaderBytes <= 0 {
		out.MaxHeaderBytes = defaultMaxHeaderBytes
	}
	if out.ShutdownTimeout < minShutdownTimeout {
		out.ShutdownTimeout = minShutdownTimeout
	}
	return out
}

// MetricsAddr returns the metrics listen address, or "" when metrics are disabled.
func MetricsAddr(cfg AppConfig) string {
	if !cfg.Metrics.Enabled {
		return ""
	}
	return cfg.Metrics.ListenAddr
}
