// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package api

import (
	"encoding/json"
	"net/http"

	"github.com/ManuGH/vodmeta/internal/api/problem"
	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/ManuGH/vodmeta/internal/video"
)

// listVideosResponse is the envelope of GET /api/videos.
type listVideosResponse struct {
	Data []video.Video `json:"data"`
}

// handleListVideos returns every stored video as {"data":[...]}.
func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.videos.GetAllVideos(r.Context())
	if err != nil {
		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Error().
			Err(err).
			Str(log.FieldEvent, "videos.list_failed").
			Msg("listing videos failed")
		problem.Internal(w, r)
		return
	}
	if videos == nil {
		videos = []video.Video{}
	}
	writeJSON(w, r, http.StatusOK, listVideosResponse{Data: videos})
}

// writeJSON encodes body without HTML escaping so URLs come out verbatim.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Warn().Err(err).Str(log.FieldEvent, "response.encode_failed").Msg("failed to encode response")
	}
}
