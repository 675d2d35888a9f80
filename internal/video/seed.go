// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package video

import (
	"context"
	"fmt"

	"github.com/ManuGH/vodmeta/internal/log"
)

// SeedVideos are the fixed records inserted into an empty store at startup.
var SeedVideos = []Video{
	{
		Title:        "Video 1",
		Description:  "Description 1",
		Duration:     100,
		ThumbnailURL: "https://example.com/thumbnail1.jpg",
		FilePath:     "path/to/video1.mp4",
	},
	{
		Title:        "Video 2",
		Description:  "Description 2",
		Duration:     200,
		ThumbnailURL: "https://example.com/thumbnail2.jpg",
		FilePath:     "path/to/video2.mp4",
	},
}

// Seed inserts SeedVideos when the store is empty and does nothing otherwise.
// It reports how many records were inserted. A failed insert aborts seeding;
// records inserted before the failure stay in place.
func Seed(ctx context.Context, store Store) (int, error) {
	if store == nil {
		return 0, ErrNilStore
	}
	logger := log.WithComponentFromContext(ctx, "seeder")

	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	if n != 0 {
		logger.Debug().
			Str(log.FieldEvent, "seed.skipped").
			Int64(log.FieldCount, n).
			Msg("store already populated, skipping seed")
		return 0, nil
	}

	inserted := 0
	for _, v := range SeedVideos {
		stored, err := store.Insert(ctx, v)
		if err != nil {
			return inserted, fmt.Errorf("insert seed video %q: %w", v.Title, err)
		}
		inserted++
		logger.Debug().
			Str(log.FieldEvent, "seed.inserted").
			Int64(log.FieldVideoID, stored.ID).
			Str("title", stored.Title).
			Msg("seed video inserted")
	}

	logger.Info().
		Str(log.FieldEvent, "seed.completed").
		Int(log.FieldCount, inserted).
		Msg("seeded empty video store")
	return inserted, nil
}
