// Package services – CollaborationService
//
// This file implements the CollaborationService, which grants and revokes
// playlist edit rights. All three operations share the zero-rows-is-failure
// policy: an insert, delete, or lookup that touches nothing is reported as
// an invariant violation with the message fixed by the API contract.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
	"github.com/openmusicapp/go-music-backend/internal/errs"
	"github.com/openmusicapp/go-music-backend/internal/repo"
)

// CollaborationRepo defines the repository contract required by
// CollaborationService.
type CollaborationRepo interface {
	// CreateCollaboration inserts a grant for (playlistID, userID).
	CreateCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) (*domain.Collaboration, error)

	// DeleteCollaboration removes the grant for (playlistID, userID).
	DeleteCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) error

	// GetCollaboration fetches the grant for (playlistID, userID).
	GetCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) (*domain.Collaboration, error)
}

// CollaborationService manages playlist collaboration grants.
type CollaborationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the collaboration repository used by this service.
	Repo CollaborationRepo
}

// NewCollaborationService constructs a CollaborationService bound to db and r.
func NewCollaborationService(db *gorm.DB, r CollaborationRepo) *CollaborationService {
	return &CollaborationService{DB: db, Repo: r}
}

// Add grants userID edit rights on playlistID and returns the generated
// collaboration id. A duplicate (playlistID, userID) pair or an insert
// affecting zero rows is an invariant violation.
func (s *CollaborationService) Add(ctx context.Context, playlistID, userID string) (string, error) {
	c, err := s.Repo.CreateCollaboration(ctx, s.DB, playlistID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) || isDuplicate(err) {
			return "", errs.NewInvariantError("Kolaborasi gagal ditambahkan")
		}
		return "", err
	}
	return c.ID, nil
}

// Delete revokes the grant for (playlistID, userID). Zero affected rows is
// an invariant violation; there is no "already deleted" success path.
func (s *CollaborationService) Delete(ctx context.Context, playlistID, userID string) error {
	if err := s.Repo.DeleteCollaboration(ctx, s.DB, playlistID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.NewInvariantError("Kolaborasi gagal dihapus")
		}
		return err
	}
	return nil
}

// Verify confirms that userID holds a grant on playlistID, failing with an
// invariant violation when the pair does not exist.
func (s *CollaborationService) Verify(ctx context.Context, playlistID, userID string) error {
	if _, err := s.Repo.GetCollaboration(ctx, s.DB, playlistID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.NewInvariantError("Kolaborasi gagal diverifikasi")
		}
		return err
	}
	return nil
}
