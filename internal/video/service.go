// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package video

import (
	"context"

	"github.com/ManuGH/vodmeta/internal/telemetry"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/ManuGH/vodmeta/internal/video"

// Service is the read façade used by the HTTP layer.
type Service struct {
	store Store
}

// NewService creates a listing service over store.
func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	return &Service{store: store}, nil
}

// GetAllVideos returns every stored record exactly as the store lists it.
func (s *Service) GetAllVideos(ctx context.Context) ([]Video, error) {
	ctx, span := telemetry.Tracer(tracerName).Start(ctx, "video.GetAllVideos")
	defer span.End()

	videos, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list videos")
		span.SetAttributes(telemetry.ErrorAttributes("store")...)
		return nil, err
	}
	span.SetAttributes(telemetry.ListAttributes(len(videos))...)
	return videos, nil
}
