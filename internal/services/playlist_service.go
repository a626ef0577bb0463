// Package services – PlaylistService
//
// This file implements the ownership checks performed before collaboration
// mutations. Playlists are owned elsewhere; this service only resolves the
// owner and distinguishes three outcomes: playlist missing (not found),
// caller is not the owner (authorization failure), caller is the owner
// (proceed). Keeping the two failure kinds distinct lets handlers answer
// 404 vs 403 without inspecting exception identity.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
	"github.com/openmusicapp/go-music-backend/internal/errs"
	"github.com/openmusicapp/go-music-backend/internal/repo"
)

// PlaylistRepo defines the repository contract required by PlaylistService.
type PlaylistRepo interface {
	// GetPlaylist fetches a playlist by id.
	GetPlaylist(ctx context.Context, db *gorm.DB, id string) (*domain.Playlist, error)
}

// CollaboratorVerifier checks whether userID holds a collaboration grant on
// playlistID. Satisfied by CollaborationService.
type CollaboratorVerifier interface {
	Verify(ctx context.Context, playlistID, userID string) error
}

// PlaylistService resolves playlist ownership for authorization decisions.
type PlaylistService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the playlist repository used by this service.
	Repo PlaylistRepo
	// Collaborations, when set, widens VerifyAccess to collaborators.
	Collaborations CollaboratorVerifier
}

// NewPlaylistService constructs a PlaylistService bound to db and r.
func NewPlaylistService(db *gorm.DB, r PlaylistRepo) *PlaylistService {
	return &PlaylistService{DB: db, Repo: r}
}

// VerifyOwner confirms that ownerID owns playlistID.
//
// Outcomes:
//   - playlist missing: not-found error ("Playlist tidak ditemukan")
//   - owned by someone else: authorization error
//   - owned by ownerID: nil
func (s *PlaylistService) VerifyOwner(ctx context.Context, playlistID, ownerID string) error {
	p, err := s.Repo.GetPlaylist(ctx, s.DB, playlistID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.NewNotFoundError("Playlist tidak ditemukan")
		}
		return err
	}
	if p.Owner != ownerID {
		return errs.NewAuthorizationError("Anda tidak berhak mengakses resource ini")
	}
	return nil
}

// VerifyAccess confirms that userID may modify playlistID, either as its
// owner or as a collaborator. A missing playlist short-circuits as not
// found; an ownership failure falls through to the collaboration check and,
// when that also fails, the original authorization error is returned.
func (s *PlaylistService) VerifyAccess(ctx context.Context, playlistID, userID string) error {
	err := s.VerifyOwner(ctx, playlistID, userID)
	if err == nil {
		return nil
	}

	var domainErr *errs.Error
	if errors.As(err, &domainErr) && domainErr.Kind == errs.KindAuthorization && s.Collaborations != nil {
		if s.Collaborations.Verify(ctx, playlistID, userID) == nil {
			return nil
		}
	}
	return err
}
