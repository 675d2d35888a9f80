// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrite(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	req = req.WithContext(log.ContextWithRequestID(req.Context(), "req-123"))
	rec := httptest.NewRecorder()

	Write(rec, req, http.StatusNotFound, TypeNotFound, "Not Found", CodeNotFound, "no such route",
		map[string]any{"hint": "check the path", "status": 999})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))

	body := decode(t, rec)
	assert.Equal(t, TypeNotFound, body["type"])
	assert.Equal(t, "Not Found", body["title"])
	assert.EqualValues(t, 404, body["status"])
	assert.Equal(t, CodeNotFound, body["code"])
	assert.Equal(t, "no such route", body["detail"])
	assert.Equal(t, "/api/videos", body["instance"])
	assert.Equal(t, "req-123", body[JSONKeyRequestID])
	assert.Equal(t, "check the path", body["hint"])
}

func TestWrite_RequestIDFallbacks(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set(HeaderRequestID, "from-header")
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, "t", "T", "C", "", nil)
	assert.Equal(t, "from-header", decode(t, rec)[JSONKeyRequestID])

	rec = httptest.NewRecorder()
	Write(rec, nil, http.StatusBadRequest, "t", "T", "C", "", nil)
	body := decode(t, rec)
	assert.NotEmpty(t, body[JSONKeyRequestID])
	assert.NotContains(t, body, "instance")
	assert.NotContains(t, body, "detail")
}

func TestInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	Internal(rec, httptest.NewRequest(http.MethodGet, "/api/videos", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, TypeInternal, body["type"])
	assert.Equal(t, CodeInternal, body["code"])
}
