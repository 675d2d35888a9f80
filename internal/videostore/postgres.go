// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"fmt"

	"github.com/ManuGH/vodmeta/internal/video"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// videoRow is the gorm model behind the "videos" table.
type videoRow struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Title        string `gorm:"not null"`
	Description  string `gorm:"not null"`
	Duration     int    `gorm:"not null;check:duration >= 0"`
	ThumbnailURL string `gorm:"column:thumbnail_url;not null"`
	FilePath     string `gorm:"column:file_path;not null"`
}

func (videoRow) TableName() string {
	return "videos"
}

func (r videoRow) toVideo() video.Video {
	return video.Video{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Duration:     r.Duration,
		ThumbnailURL: r.ThumbnailURL,
		FilePath:     r.FilePath,
	}
}

// PostgresStore persists video records in PostgreSQL through gorm.
type PostgresStore struct {
	db *gorm.DB
}

// OpenPostgresStore connects to dsn and migrates the videos table.
func OpenPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&videoRow{}); err != nil {
		_ = closeGorm(db)
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func closeGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	return closeGorm(s.db)
}

func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&videoRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]video.Video, error) {
	var rows []videoRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	videos := make([]video.Video, 0, len(rows))
	for _, r := range rows {
		videos = append(videos, r.toVideo())
	}
	return videos, nil
}

func (s *PostgresStore) Insert(ctx context.Context, v video.Video) (video.Video, error) {
	row := videoRow{
		Title:        v.Title,
		Description:  v.Description,
		Duration:     v.Duration,
		ThumbnailURL: v.ThumbnailURL,
		FilePath:     v.FilePath,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return video.Video{}, fmt.Errorf("insert video: %w", err)
	}
	return row.toVideo(), nil
}

// Ping verifies the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
