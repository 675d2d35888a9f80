// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/rs/zerolog"
)

// parseEnv reads key from the environment and converts it with parse.
// Unset or empty variables and unparsable values yield def. Every decision is
// logged at debug level with its source; parse failures are logged as warnings.
func parseEnv[T any](key string, def T, parse func(string) (T, error), field func(*zerolog.Event, string, T) *zerolog.Event) T {
	logger := log.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok {
		field(logger.Debug().Str("key", key), "default", def).
			Str("source", "default").
			Msg("using default value")
		return def
	}
	if v == "" {
		field(logger.Debug().Str("key", key), "default", def).
			Str("source", "default").
			Msg("using default value (environment variable is empty)")
		return def
	}
	parsed, err := parse(v)
	if err != nil {
		field(logger.Warn().Str("key", key).Str("value", v), "default", def).
			Msg("invalid value in environment variable, using default")
		return def
	}
	if isSensitive(key) {
		logger.Debug().
			Str("key", key).
			Str("source", "environment").
			Bool("sensitive", true).
			Msg("using environment variable")
		return parsed
	}
	field(logger.Debug().Str("key", key), "value", parsed).
		Str("source", "environment").
		Msg("using environment variable")
	return parsed
}

func isSensitive(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "password") || strings.Contains(k, "token") || strings.Contains(k, "dsn")
}

// ParseString reads a string from environment variable or returns default value.
func ParseString(key, defaultValue string) string {
	return parseEnv(key, defaultValue,
		func(s string) (string, error) { return s, nil },
		func(e *zerolog.Event, k string, v string) *zerolog.Event {
			if isSensitive(key) {
				return e.Bool("redacted", v != "")
			}
			return e.Str(k, v)
		})
}

// ParseInt reads an integer from environment variable or returns default value.
// It falls back to default on parse errors.
func ParseInt(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, strconv.Atoi,
		func(e *zerolog.Event, k string, v int) *zerolog.Event { return e.Int(k, v) })
}

// ParseDuration reads a duration in Go duration format (e.g. "5s").
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	return parseEnv(key, defaultValue, time.ParseDuration,
		func(e *zerolog.Event, k string, v time.Duration) *zerolog.Event { return e.Dur(k, v) })
}

// ParseFloat reads a float64 from environment variable or returns default value.
func ParseFloat(key string, defaultValue float64) float64 {
	return parseEnv(key, defaultValue,
		func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		func(e *zerolog.Event, k string, v float64) *zerolog.Event { return e.Float64(k, v) })
}

// ParseBool reads a boolean from environment variable or returns default value.
// It accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, parseBoolWord,
		func(e *zerolog.Event, k string, v bool) *zerolog.Event { return e.Bool(k, v) })
}

func parseBoolWord(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// ParseStringList reads a comma separated list. Blank entries are dropped.
func ParseStringList(key string, defaultValue []string) []string {
	return parseEnv(key, defaultValue,
		func(s string) ([]string, error) {
			var out []string
			for _, part := range strings.Split(s, ",") {
				if p := strings.TrimSpace(part); p != "" {
					out = append(out, p)
				}
			}
			return out, nil
		},
		func(e *zerolog.Event, k string, v []string) *zerolog.Event { return e.Strs(k, v) })
}
