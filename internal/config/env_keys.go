// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

// Environment variables read by the loader. They override the YAML file.
const (
	EnvDataDir    = "VODMETA_DATA_DIR"
	EnvLogLevel   = "VODMETA_LOG_LEVEL"
	EnvLogService = "VODMETA_LOG_SERVICE"

	EnvListen            = "VODMETA_LISTEN"
	EnvAllowedOrigins    = "VODMETA_ALLOWED_ORIGINS" // comma separated
	EnvRateLimitEnabled  = "VODMETA_RATELIMIT_ENABLED"
	EnvRateLimitPerMin   = "VODMETA_RATELIMIT_RPM"
	EnvReadTimeout       = "VODMETA_SERVER_READ_TIMEOUT"
	EnvWriteTimeout      = "VODMETA_SERVER_WRITE_TIMEOUT"
	EnvIdleTimeout       = "VODMETA_SERVER_IDLE_TIMEOUT"
	EnvMaxHeaderBytes    = "VODMETA_SERVER_MAX_HEADER_BYTES"
	EnvShutdownTimeout   = "VODMETA_SERVER_SHUTDOWN_TIMEOUT"
	EnvStoreBackend      = "VODMETA_STORE_BACKEND"
	EnvStorePath         = "VODMETA_STORE_PATH"
	EnvStoreDSN          = "VODMETA_STORE_DSN"
	EnvCacheBackend      = "VODMETA_CACHE_BACKEND"
	EnvCacheTTL          = "VODMETA_CACHE_TTL"
	EnvRedisAddr         = "VODMETA_REDIS_ADDR"
	EnvRedisPassword     = "VODMETA_REDIS_PASSWORD"
	EnvRedisDB           = "VODMETA_REDIS_DB"
	EnvMetricsEnabled    = "VODMETA_METRICS_ENABLED"
	EnvMetricsListen     = "VODMETA_METRICS_LISTEN"
	EnvTracingEnabled    = "VODMETA_TRACING_ENABLED"
	EnvTracingExporter   = "VODMETA_TRACING_EXPORTER"
	EnvTracingEndpoint   = "VODMETA_TRACING_ENDPOINT"
	EnvTracingSampleRate = "VODMETA_TRACING_SAMPLING_RATE"
	EnvTracingEnv        = "VODMETA_TRACING_ENVIRONMENT"
	EnvSeedEnabled       = "VODMETA_SEED_ENABLED"
)
