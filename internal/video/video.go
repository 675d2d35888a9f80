// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package video holds the video metadata record, the store contract it is
// persisted through, the listing service and the startup seeder.
package video

import (
	"context"
	"errors"
)

// Video is the persisted metadata for one media asset.
// ID is assigned by the store on insert and never reused.
type Video struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     int    `json:"duration"` // seconds
	ThumbnailURL string `json:"thumbnailUrl"`
	FilePath     string `json:"filePath"`
}

// Store is the persistence boundary for video records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
	// List returns all records in insertion order. An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]Video, error)
	// Insert persists v under a freshly assigned ID and returns the stored record.
	// Any ID already set on v is ignored.
	Insert(ctx context.Context, v Video) (Video, error)
}

// ErrNilStore is returned when a service or seeder is built without a store.
var ErrNilStore = errors.New("video store is required")
