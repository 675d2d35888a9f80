// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package middleware provides the HTTP middleware stack for the API server.
package middleware

import (
	"net/http"

	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/ManuGH/vodmeta/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracing wraps requests in an otelhttp server span. Incoming W3C trace
// context is honoured; once chi has routed the request the span is renamed
// to the route pattern.
func Tracing(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		routed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			span := trace.SpanFromContext(r.Context())
			if rid := log.RequestIDFromContext(r.Context()); rid != "" {
				span.SetAttributes(attribute.String(telemetry.HTTPRequestIDKey, rid))
			}

			rec := log.NewResponseRecorder(w)
			next.ServeHTTP(rec, r)

			route := routePattern(r)
			span.SetName(r.Method + " " + route)
			span.SetAttributes(telemetry.HTTPAttributes(r.Method, route, r.URL.String(), rec.Status())...)
		})
		return otelhttp.NewHandler(routed, service,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
}
