// Package repo – user persistence.
//
// Same conventions as the other repositories: context-aware free functions
// over *gorm.DB, zero matching rows reported as gorm.ErrRecordNotFound, raw
// DB errors propagated untouched.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
)

// CreateUser inserts a new user row with a generated "user-" prefixed id.
// The password is stored as given; hashing happens in the service layer.
func CreateUser(ctx context.Context, db *gorm.DB, username, hashedPassword, fullname string) (*domain.User, error) {
	u := &domain.User{
		ID:       "user-" + uuid.NewString(),
		Username: username,
		Password: hashedPassword,
		Fullname: fullname,
	}
	res := db.WithContext(ctx).Create(u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

// GetUser fetches a single user by id, or ErrNotFound if no row matches.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsersByUsername returns how many rows carry the given username.
// Used by the service layer to reject duplicates before inserting.
func CountUsersByUsername(ctx context.Context, db *gorm.DB, username string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ?", username).
		Count(&total).Error
	return total, err
}
