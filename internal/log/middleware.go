// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Middleware logs one "request.handled" event per HTTP request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := NewResponseRecorder(w)

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			logger := WithComponentFromContext(r.Context(), "http")
			evt := logger.Info()
			if rec.Status() >= http.StatusInternalServerError {
				evt = logger.Error()
			}
			evt.
				Str(FieldEvent, "request.handled").
				Str(FieldMethod, r.Method).
				Str(FieldPath, path).
				Int(FieldStatus, rec.Status()).
				Int(FieldBytes, rec.Bytes()).
				Int64(FieldDurationMS, time.Since(start).Milliseconds()).
				Str(FieldRemoteAddr, r.RemoteAddr).
				Msg("request handled")
		})
	}
}
