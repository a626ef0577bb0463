// Package repo – playlist persistence.
//
// Playlists are referenced by the collaboration flow for ownership checks;
// their full lifecycle is managed elsewhere. CreatePlaylist exists so that
// deployments sharing the schema (and tests) can seed rows.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
)

// CreatePlaylist inserts a new playlist row with a generated "playlist-"
// prefixed id, owned by ownerID.
func CreatePlaylist(ctx context.Context, db *gorm.DB, name, ownerID string) (*domain.Playlist, error) {
	p := &domain.Playlist{
		ID:    "playlist-" + uuid.NewString(),
		Name:  name,
		Owner: ownerID,
	}
	res := db.WithContext(ctx).Create(p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

// GetPlaylist fetches a single playlist by id, or ErrNotFound if no row
// matches. The returned Owner is what the ownership check compares against.
func GetPlaylist(ctx context.Context, db *gorm.DB, id string) (*domain.Playlist, error) {
	var p domain.Playlist
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
