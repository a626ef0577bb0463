// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Song model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a song is not found (point lookup, or zero rows affected by an
//     update/delete), functions return gorm.ErrRecordNotFound (also exported
//     here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist or a
// mutating statement affected zero rows. It aliases gorm.ErrRecordNotFound
// for consistency across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// SongFields carries the mutable attributes of a song, as accepted by the
// create and update operations. Identity and timestamps are managed here.
type SongFields struct {
	Title     string
	Year      int
	Performer string
	Genre     string
	Duration  *int
}

// CreateSong inserts a new song row with a generated "song-" prefixed id and
// both timestamps set to the same UTC instant. On success it returns the
// persisted Song.
func CreateSong(ctx context.Context, db *gorm.DB, f SongFields) (*domain.Song, error) {
	now := time.Now().UTC()
	s := &domain.Song{
		ID:         "song-" + uuid.NewString(),
		Title:      f.Title,
		Year:       f.Year,
		Performer:  f.Performer,
		Genre:      f.Genre,
		Duration:   f.Duration,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	res := db.WithContext(ctx).Create(s)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

// ListSongs returns the reduced projection (id, title, performer) of every
// song. The column-to-field mapping is handled by GORM and is stable: the
// same rows always yield identical summaries.
func ListSongs(ctx context.Context, db *gorm.DB) ([]domain.SongSummary, error) {
	out := []domain.SongSummary{}
	err := db.WithContext(ctx).
		Model(&domain.Song{}).
		Select("id", "title", "performer").
		Find(&out).Error
	return out, err
}

// GetSong fetches a single song by id, or ErrNotFound if no row matches.
func GetSong(ctx context.Context, db *gorm.DB, id string) (*domain.Song, error) {
	var s domain.Song
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSong rewrites all mutable fields of the song identified by id and
// refreshes updated_at. If no rows are affected it returns ErrNotFound.
func UpdateSong(ctx context.Context, db *gorm.DB, id string, f SongFields) error {
	res := db.WithContext(ctx).
		Model(&domain.Song{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":      f.Title,
			"year":       f.Year,
			"performer":  f.Performer,
			"genre":      f.Genre,
			"duration":   f.Duration,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteSong removes the song identified by id. If no rows are affected it
// returns ErrNotFound; delete is deliberately not idempotent.
func DeleteSong(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Song{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
