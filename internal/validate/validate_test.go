// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package validate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"port only", ":8088", false},
		{"host and port", "127.0.0.1:9090", false},
		{"ephemeral", ":0", false},
		{"empty", "", true},
		{"missing port", "localhost", true},
		{"port out of range", ":70000", true},
		{"non numeric port", ":http-alt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.ListenAddr("listen", tt.addr)
			assert.Equal(t, tt.wantErr, !v.IsValid(), "err=%v", v.Err())
		})
	}
}

func TestValidator_Ranges(t *testing.T) {
	v := New()
	v.FloatRange("rate", 0.5, 0, 1)
	v.NonNegativeDuration("ttl", 0)
	v.PositiveDuration("ttl", time.Millisecond)
	v.NonNegative("db", 0)
	v.Positive("rpm", 1)
	v.OneOf("backend", "sqlite", []string{"memory", "sqlite"})
	v.NotEmpty("dsn", "postgres://x")
	require.True(t, v.IsValid())
	require.NoError(t, v.Err())

	v.FloatRange("rate", 1.5, 0, 1)
	v.NonNegativeDuration("ttl", -time.Second)
	v.PositiveDuration("ttl", 0)
	v.NonNegative("db", -1)
	v.Positive("rpm", 0)
	v.OneOf("backend", "mongo", []string{"memory", "sqlite"})
	v.NotEmpty("dsn", "  ")
	assert.Len(t, v.Errors(), 7)
}

func TestValidationError_Format(t *testing.T) {
	v := New()
	v.AddError("a", "bad", 1)
	assert.EqualError(t, v.Err(), "validation failed for a: bad")

	v.AddError("b", "worse", 2)
	err := v.Err()
	assert.EqualError(t, err, "validation failed for a: bad; validation failed for b: worse")

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "b", verr.Errors()[1].Field)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, lvl)

	_, err = ParseLogLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
