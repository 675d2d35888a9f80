// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package config provides configuration management for vodmeta.
package config

import "time"

// AppConfig is the fully resolved configuration: defaults, then the YAML
// file, then environment overrides.
type AppConfig struct {
	Version    string `yaml:"-"`
	DataDir    string `yaml:"dataDir"`
	LogLevel   string `yaml:"logLevel"`
	LogService string `yaml:"logService"`

	API     APIConfig           `yaml:"api"`
	Server  ServerRuntimeConfig `yaml:"server"`
	Store   StoreConfig         `yaml:"store"`
	Cache   CacheConfig         `yaml:"cache"`
	Metrics MetricsConfig       `yaml:"metrics"`
	Tracing TracingConfig       `yaml:"tracing"`
	Seed    SeedConfig          `yaml:"seed"`
}

// APIConfig configures the public HTTP listener.
type APIConfig struct {
	ListenAddr     string          `yaml:"listenAddr"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig configures per-client request limiting.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
}

// ServerRuntimeConfig holds the http.Server tunables as they appear in YAML.
type ServerRuntimeConfig struct {
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	MaxHeaderBytes  int           `yaml:"maxHeaderBytes"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// StoreConfig selects the video store backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // memory|sqlite|badger|postgres
	Path    string `yaml:"path"`    // derived from DataDir when empty
	DSN     string `yaml:"dsn"`
}

// CacheConfig configures the listing cache in front of the store.
type CacheConfig struct {
	Backend string        `yaml:"backend"` // none|memory|redis
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

// RedisConfig locates the Redis server used by the redis cache backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// MetricsConfig configures the Prometheus listener.
type MetricsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listenAddr"`
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"` // grpc|http
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"samplingRate"`
	Environment  string  `yaml:"environment"`
}

// SeedConfig controls the startup seeder.
type SeedConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Backend and exporter names.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StoreBadger   = "badger"
	StorePostgres = "postgres"

	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"

	ExporterGRPC = "grpc"
	ExporterHTTP = "http"
)

const (
	defaultDataDir         = "data"
	defaultLogLevel        = "info"
	defaultLogService      = "vodmeta"
	defaultRatePerMinute   = 600
	defaultCacheTTL        = 30 * time.Second
	defaultRedisAddr       = "localhost:6379"
	defaultMetricsListen   = ":9090"
	defaultTracingEndpoint = "localhost:4317"
	defaultSamplingRate    = 1.0
	defaultEnvironment     = "production"
)

// Defaults returns the configuration used when neither file nor environment set a value.
func Defaults() AppConfig {
	return AppConfig{
		DataDir:    defaultDataDir,
		LogLevel:   defaultLogLevel,
		LogService: defaultLogService,
		API: APIConfig{
			ListenAddr: fallbackListenAddr,
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerMinute: defaultRatePerMinute,
			},
		},
		Server: ServerRuntimeConfig{
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			MaxHeaderBytes:  defaultMaxHeaderBytes,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Store: StoreConfig{Backend: StoreSQLite},
		Cache: CacheConfig{
			Backend: CacheNone,
			TTL:     defaultCacheTTL,
			Redis:   RedisConfig{Addr: defaultRedisAddr},
		},
		Metrics: MetricsConfig{ListenAddr: defaultMetricsListen},
		Tracing: TracingConfig{
			Exporter:     ExporterGRPC,
			Endpoint:     defaultTracingEndpoint,
			SamplingRate: defaultSamplingRate,
			Environment:  defaultEnvironment,
		},
		Seed: SeedConfig{Enabled: true},
	}
}
