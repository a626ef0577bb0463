// Package repo – collaboration persistence.
//
// Collaborations are keyed by their generated id but mutated through the
// composite (playlist_id, user_id) pair, mirroring the delete/verify
// operations of the HTTP surface. Zero affected rows surface as
// gorm.ErrRecordNotFound, which the service layer translates into the
// appropriate domain error.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
)

// CreateCollaboration inserts a collaboration row with a generated "collab-"
// prefixed id. A duplicate (playlist_id, user_id) pair trips the unique
// index; the raw constraint error is propagated for the caller to classify.
func CreateCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) (*domain.Collaboration, error) {
	c := &domain.Collaboration{
		ID:         "collab-" + uuid.NewString(),
		PlaylistID: playlistID,
		UserID:     userID,
	}
	res := db.WithContext(ctx).Create(c)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

// DeleteCollaboration removes the row matching the (playlistID, userID)
// pair. If no rows are affected it returns ErrNotFound.
func DeleteCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) error {
	res := db.WithContext(ctx).
		Where("playlist_id = ? AND user_id = ?", playlistID, userID).
		Delete(&domain.Collaboration{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetCollaboration fetches the row matching the (playlistID, userID) pair,
// or ErrNotFound if the grant does not exist.
func GetCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) (*domain.Collaboration, error) {
	var c domain.Collaboration
	err := db.WithContext(ctx).
		Where("playlist_id = ? AND user_id = ?", playlistID, userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
