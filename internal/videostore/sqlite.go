// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ManuGH/vodmeta/internal/persistence/sqlite"
	"github.com/ManuGH/vodmeta/internal/video"
)

// SQLiteStore persists video records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlite.Open(dbPath, sqlite.DefaultConfig())
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AUTOINCREMENT keeps ids of removed rows from being handed out again.
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS videos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		duration INTEGER NOT NULL CHECK(duration >= 0),
		thumbnail_url TEXT NOT NULL,
		file_path TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM videos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]video.Video, error) {
	query := `
	SELECT id, title, description, duration, thumbnail_url, file_path
	FROM videos
	ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	videos := make([]video.Video, 0)
	for rows.Next() {
		var v video.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Duration, &v.ThumbnailURL, &v.FilePath); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, v video.Video) (video.Video, error) {
	query := `
	INSERT INTO videos (title, description, duration, thumbnail_url, file_path)
	VALUES (?, ?, ?, ?, ?)
	`
	res, err := s.db.ExecContext(ctx, query, v.Title, v.Description, v.Duration, v.ThumbnailURL, v.FilePath)
	if err != nil {
		return video.Video{}, fmt.Errorf("insert video: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return video.Video{}, fmt.Errorf("insert video: last insert id: %w", err)
	}
	v.ID = id
	return v, nil
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
