// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/ManuGH/vodmeta/internal/cache"
	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/ManuGH/vodmeta/internal/video"
)

const listCacheKey = "videos:list"

// Cached serves List from a cache and drops the cached listing on every Insert.
// A cache failure falls through to the wrapped store.
//
// gen is bumped by every Insert after it reaches the store. A List that read
// the store under an older generation never leaves its result in the cache,
// so a listing fetched before a concurrent Insert cannot outlive that Insert.
// Writers in other processes are only bounded by the TTL.
type Cached struct {
	next  video.Store
	cache cache.Cache
	ttl   time.Duration
	gen   atomic.Uint64
}

// NewCached wraps next with a read-through listing cache.
func NewCached(next video.Store, c cache.Cache, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: c, ttl: ttl}
}

func (s *Cached) Count(ctx context.Context) (int64, error) {
	return s.next.Count(ctx)
}

func (s *Cached) List(ctx context.Context) ([]video.Video, error) {
	if raw, ok := s.cache.Get(ctx, listCacheKey); ok {
		var videos []video.Video
		if err := json.Unmarshal(raw, &videos); err == nil && videos != nil {
			return videos, nil
		}
		logger := log.WithComponentFromContext(ctx, "videostore")
		logger.Warn().Str(log.FieldEvent, "cache.decode_failed").Msg("discarding undecodable cached listing")
		s.cache.Delete(ctx, listCacheKey)
	}

	gen := s.gen.Load()
	videos, err := s.next.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.ttl <= 0 || s.gen.Load() != gen {
		return videos, nil
	}
	if raw, err := json.Marshal(videos); err == nil {
		s.cache.Set(ctx, listCacheKey, raw, s.ttl)
		// an Insert that landed between the check and Set may have deleted first
		if s.gen.Load() != gen {
			s.cache.Delete(ctx, listCacheKey)
		}
	}
	return videos, nil
}

func (s *Cached) Insert(ctx context.Context, v video.Video) (video.Video, error) {
	stored, err := s.next.Insert(ctx, v)
	// invalidated on error too: a failed Insert may still have written
	s.gen.Add(1)
	s.cache.Delete(ctx, listCacheKey)
	return stored, err
}
