// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"sync"

	"github.com/ManuGH/vodmeta/internal/video"
)

// MemoryStore keeps video records in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	videos []video.Video
	nextID int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.videos)), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]video.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]video.Video, len(s.videos))
	copy(out, s.videos)
	return out, nil
}

func (s *MemoryStore) Insert(ctx context.Context, v video.Video) (video.Video, error) {
	if err := ctx.Err(); err != nil {
		return video.Video{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID
	s.nextID++
	s.videos = append(s.videos, v)
	return v, nil
}
