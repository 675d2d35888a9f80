// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldVideoID   = "video_id"

	// Event fields
	FieldEvent = "event"

	// HTTP fields
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldBytes      = "bytes"
	FieldDurationMS = "duration_ms"
	FieldRemoteAddr = "remote_addr"

	// Storage fields
	FieldBackend = "backend"
	FieldCount   = "count"
)
