// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package problem writes RFC 7807 problem details responses.
package problem

import (
	"encoding/json"
	"net/http"

	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is the canonical header for request correlation.
	HeaderRequestID = "X-Request-ID"
	// JSONKeyRequestID is the JSON key carrying the request id in problem bodies.
	JSONKeyRequestID = "requestId"

	// ContentType is the media type of problem responses.
	ContentType = "application/problem+json"
)

// Canonical problem types and codes.
const (
	TypeInternal    = "system/internal"
	CodeInternal    = "INTERNAL_ERROR"
	TypeNotFound    = "system/not_found"
	CodeNotFound    = "NOT_FOUND"
	TypeRateLimited = "system/rate_limited"
	CodeRateLimited = "RATE_LIMITED"
)

// Write writes an RFC 7807 problem details response.
//
// Semantics:
//   - type: Canonical machine identifier (e.g. "system/not_found").
//   - title: Human-readable short label (e.g. "Not Found").
//   - code: Stable machine-readable short code (e.g. "NOT_FOUND").
//   - detail: Human-readable explanation of the specific error.
//
// Reserved keys in extra are ignored.
func Write(w http.ResponseWriter, r *http.Request, status int, problemType, title, code, detail string, extra map[string]any) {
	instance := ""
	reqID := ""
	if r != nil {
		instance = r.URL.EscapedPath()
		reqID = log.RequestIDFromContext(r.Context())
	}
	if reqID == "" {
		reqID = w.Header().Get(HeaderRequestID)
	}
	if reqID == "" {
		reqID = uuid.NewString()
	}

	res := map[string]any{
		"type":           problemType,
		"title":          title,
		"status":         status,
		"code":           code,
		JSONKeyRequestID: reqID,
	}
	if detail != "" {
		res["detail"] = detail
	}
	if instance != "" {
		res["instance"] = instance
	}
	for k, v := range extra {
		switch k {
		case "type", "title", "status", "detail", "instance", "code", JSONKeyRequestID:
			log.L().Warn().Str("key", k).Str("problem_type", problemType).Msg("ignoring reserved key in problem extras")
			continue
		}
		res[k] = v
	}

	w.Header().Set(HeaderRequestID, reqID)
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.L().Error().
			Err(err).
			Str("type", problemType).
			Int(log.FieldStatus, status).
			Msg("failed to encode problem response")
	}
}

// Internal writes the generic 500 response. Error details never reach the client.
func Internal(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusInternalServerError, TypeInternal, "Internal Server Error", CodeInternal,
		"An unexpected error occurred. Please try again later.", nil)
}
