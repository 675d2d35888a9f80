// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Common attribute keys for consistent tracing across the application.
const (
	HTTPMethodKey     = "http.method"
	HTTPStatusCodeKey = "http.status_code"
	HTTPRouteKey      = "http.route"
	HTTPURLKey        = "http.url"
	HTTPRequestIDKey  = "http.request_id"

	StoreBackendKey = "store.backend"
	StoreOpKey      = "store.operation"
	VideoCountKey   = "video.count"

	ErrorKey     = "error"
	ErrorTypeKey = "error.type"
)

// HTTPAttributes creates common HTTP span attributes.
func HTTPAttributes(method, route, url string, statusCode int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(HTTPMethodKey, method),
		attribute.String(HTTPRouteKey, route),
		attribute.String(HTTPURLKey, url),
		attribute.Int(HTTPStatusCodeKey, statusCode),
	}
}

// StoreAttributes describes one video store call.
func StoreAttributes(backend, op string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(StoreBackendKey, backend),
		attribute.String(StoreOpKey, op),
	}
}

// ListAttributes records how many videos a listing returned.
func ListAttributes(count int) []attribute.KeyValue {
	return []attribute.KeyValue{attribute.Int(VideoCountKey, count)}
}

// ErrorAttributes creates error-related span attributes.
func ErrorAttributes(errorType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String(ErrorTypeKey, errorType),
	}
}
