// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFactory func(t *testing.T) video.Store

func backends(t *testing.T) map[string]storeFactory {
	t.Helper()
	b := map[string]storeFactory{
		BackendMemory: func(t *testing.T) video.Store {
			return NewMemoryStore()
		},
		BackendSQLite: func(t *testing.T) video.Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "videos.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
		BackendBadger: func(t *testing.T) video.Store {
			s, err := OpenBadgerStore("")
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
	if dsn := os.Getenv("VODMETA_TEST_POSTGRES_DSN"); dsn != "" {
		b[BackendPostgres] = func(t *testing.T) video.Store {
			s, err := OpenPostgresStore(dsn)
			require.NoError(t, err)
			require.NoError(t, s.db.Exec("TRUNCATE videos RESTART IDENTITY").Error)
			t.Cleanup(func() { _ = s.Close() })
			return s
		}
	}
	return b
}

func sampleVideo(title string, duration int) video.Video {
	return video.Video{
		Title:        title,
		Description:  "about " + title,
		Duration:     duration,
		ThumbnailURL: "https://example.com/" + title + ".jpg",
		FilePath:     "media/" + title + ".mp4",
	}
}

func TestStoreContract(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("empty", func(t *testing.T) {
				s := open(t)
				n, err := s.Count(ctx)
				require.NoError(t, err)
				assert.Zero(t, n)

				videos, err := s.List(ctx)
				require.NoError(t, err)
				require.NotNil(t, videos)
				assert.Empty(t, videos)
			})

			t.Run("insert assigns ids and lists in order", func(t *testing.T) {
				s := open(t)
				a, err := s.Insert(ctx, sampleVideo("a", 10))
				require.NoError(t, err)
				b, err := s.Insert(ctx, sampleVideo("b", 20))
				require.NoError(t, err)

				assert.Positive(t, a.ID)
				assert.Greater(t, b.ID, a.ID)

				n, err := s.Count(ctx)
				require.NoError(t, err)
				assert.EqualValues(t, 2, n)

				videos, err := s.List(ctx)
				require.NoError(t, err)
				if diff := cmp.Diff([]video.Video{a, b}, videos); diff != "" {
					t.Errorf("List mismatch (-want +got):\n%s", diff)
				}
			})

			t.Run("caller id is ignored", func(t *testing.T) {
				s := open(t)
				v := sampleVideo("c", 30)
				v.ID = 999
				stored, err := s.Insert(ctx, v)
				require.NoError(t, err)
				assert.NotEqual(t, int64(999), stored.ID)
			})

			t.Run("fields round trip", func(t *testing.T) {
				s := open(t)
				v := video.Video{
					Title:        "Ünïcode \"quoted\"",
					Description:  "",
					Duration:     0,
					ThumbnailURL: "",
					FilePath:     "a/b/c.mkv",
				}
				stored, err := s.Insert(ctx, v)
				require.NoError(t, err)

				videos, err := s.List(ctx)
				require.NoError(t, err)
				require.Len(t, videos, 1)
				v.ID = stored.ID
				assert.Equal(t, v, videos[0])
			})

			t.Run("concurrent inserts get distinct ids", func(t *testing.T) {
				s := open(t)
				const workers = 8
				ids := make(chan int64, workers)
				var wg sync.WaitGroup
				for i := 0; i < workers; i++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						stored, err := s.Insert(ctx, sampleVideo("w", 1))
						if assert.NoError(t, err) {
							ids <- stored.ID
						}
					}()
				}
				wg.Wait()
				close(ids)

				seen := map[int64]bool{}
				for id := range ids {
					assert.False(t, seen[id], "duplicate id %d", id)
					seen[id] = true
				}
				n, err := s.Count(ctx)
				require.NoError(t, err)
				assert.EqualValues(t, workers, n)
			})
		})
	}
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Insert(ctx, sampleVideo("a", 1))
	require.NoError(t, err)

	videos, err := s.List(ctx)
	require.NoError(t, err)
	videos[0].Title = "mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Title)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	_, err := s.Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Insert(ctx, sampleVideo("a", 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "videos.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	first, err := s.Insert(ctx, sampleVideo("a", 1))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	videos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, first, videos[0])

	second, err := s.Insert(ctx, sampleVideo("b", 2))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestSQLiteStore_RejectsNegativeDuration(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "videos.db"))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = s.Insert(context.Background(), sampleVideo("neg", -1))
	assert.Error(t, err)
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenBadgerStore(dir)
	require.NoError(t, err)
	first, err := s.Insert(ctx, sampleVideo("a", 1))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenBadgerStore(dir)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	second, err := s.Insert(ctx, sampleVideo("b", 2))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	videos, err := s.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]video.Video{first, second}, videos); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}
