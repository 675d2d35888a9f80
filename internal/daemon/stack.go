// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package daemon

import (
	"context"
	"errors"
	"fmt"

	"github.com/ManuGH/vodmeta/internal/cache"
	"github.com/ManuGH/vodmeta/internal/config"
	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/ManuGH/vodmeta/internal/videostore"
)

// StoreStack is an opened backend with its decorators applied.
type StoreStack struct {
	Handle *videostore.Handle
	Cache  cache.Cache // nil when caching is disabled
	Redis  *cache.RedisCache

	// Store is the decorated store: instrumented backend, optionally cached.
	Store video.Store
}

// Close releases the cache and then the backend.
func (s *StoreStack) Close() error {
	var errs []error
	if s.Cache != nil {
		if err := s.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if s.Handle != nil {
		if err := s.Handle.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	return errors.Join(errs...)
}

// OpenStoreStack opens the configured backend and wraps it with metrics and
// the configured listing cache.
func OpenStoreStack(ctx context.Context, cfg config.AppConfig) (*StoreStack, error) {
	logger := log.WithComponent("store")

	h, err := videostore.Open(ctx, videostore.Config{
		Backend: cfg.Store.Backend,
		Path:    cfg.Store.Path,
		DSN:     cfg.Store.DSN,
	})
	if err != nil {
		return nil, err
	}

	stack := &StoreStack{Handle: h}
	var store video.Store = videostore.NewInstrumented(h.Store, h.Backend)

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		stack.Cache = cache.NewMemoryCache(cfg.Cache.TTL)
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}, log.WithComponent("cache"))
		if err != nil {
			_ = h.Close()
			return nil, err
		}
		stack.Cache = rc
		stack.Redis = rc
	}
	if stack.Cache != nil {
		store = videostore.NewCached(store, stack.Cache, cfg.Cache.TTL)
	}
	stack.Store = store

	logger.Info().
		Str(log.FieldEvent, "store.opened").
		Str(log.FieldBackend, h.Backend).
		Str("cache", cfg.Cache.Backend).
		Msg("video store ready")
	return stack, nil
}
