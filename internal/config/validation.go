// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"strings"

	"github.com/ManuGH/vodmeta/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.NotEmpty("dataDir", cfg.DataDir)
	if _, err := validate.ParseLogLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		v.AddError("logLevel", err.Error(), cfg.LogLevel)
	}

	v.ListenAddr("api.listenAddr", cfg.API.ListenAddr)
	if cfg.API.RateLimit.Enabled {
		v.Positive("api.rateLimit.requestsPerMinute", cfg.API.RateLimit.RequestsPerMinute)
	}

	v.NonNegativeDuration("server.readTimeout", cfg.Server.ReadTimeout)
	v.NonNegativeDuration("server.writeTimeout", cfg.Server.WriteTimeout)
	v.NonNegativeDuration("server.idleTimeout", cfg.Server.IdleTimeout)
	v.NonNegative("server.maxHeaderBytes", cfg.Server.MaxHeaderBytes)
	v.NonNegativeDuration("server.shutdownTimeout", cfg.Server.ShutdownTimeout)

	v.OneOf("store.backend", cfg.Store.Backend, []string{StoreMemory, StoreSQLite, StoreBadger, StorePostgres})
	if cfg.Store.Backend == StorePostgres {
		v.NotEmpty("store.dsn", cfg.Store.DSN)
	}

	v.OneOf("cache.backend", cfg.Cache.Backend, []string{CacheNone, CacheMemory, CacheRedis})
	// redis reads a zero TTL as "never expire", the memory cache as "already expired"
	if cfg.Cache.Backend == CacheNone {
		v.NonNegativeDuration("cache.ttl", cfg.Cache.TTL)
	} else {
		v.PositiveDuration("cache.ttl", cfg.Cache.TTL)
	}
	if cfg.Cache.Backend == CacheRedis {
		v.NotEmpty("cache.redis.addr", cfg.Cache.Redis.Addr)
		v.NonNegative("cache.redis.db", cfg.Cache.Redis.DB)
	}

	if cfg.Metrics.Enabled {
		v.ListenAddr("metrics.listenAddr", cfg.Metrics.ListenAddr)
	}

	v.FloatRange("tracing.samplingRate", cfg.Tracing.SamplingRate, 0, 1)
	if cfg.Tracing.Enabled {
		v.OneOf("tracing.exporter", cfg.Tracing.Exporter, []string{ExporterGRPC, ExporterHTTP})
		v.NotEmpty("tracing.endpoint", cfg.Tracing.Endpoint)
	}

	return v.Err()
}
