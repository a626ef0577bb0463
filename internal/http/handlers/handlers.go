// Handler wiring.
//
// Handlers are transport-thin: they bind and validate input, resolve the
// caller identity where required, run authorization pre-conditions, call
// application services, and translate results into envelope responses.
// Validation failures short-circuit before any service call.
package handlers

import (
	"context"

	"github.com/openmusicapp/go-music-backend/internal/domain"
	"github.com/openmusicapp/go-music-backend/internal/repo"
)

//
// Service contracts (context-aware)
//

// SongService defines catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SongService interface {
	// Add inserts a song and returns its generated id.
	Add(ctx context.Context, f repo.SongFields) (string, error)
	// List returns the reduced projection of all songs.
	List(ctx context.Context) ([]domain.SongSummary, error)
	// Get fetches a song by id.
	Get(ctx context.Context, id string) (*domain.Song, error)
	// Update rewrites a song's fields.
	Update(ctx context.Context, id string, f repo.SongFields) error
	// Delete removes a song by id.
	Delete(ctx context.Context, id string) error
}

// UserService defines account operations consumed by HTTP handlers.
type UserService interface {
	// Add registers an account and returns its generated id.
	Add(ctx context.Context, username, password, fullname string) (string, error)
	// Get fetches a user by id.
	Get(ctx context.Context, id string) (*domain.User, error)
}

// PlaylistService defines the ownership pre-condition consumed by the
// collaboration handlers.
type PlaylistService interface {
	// VerifyOwner confirms ownerID owns playlistID.
	VerifyOwner(ctx context.Context, playlistID, ownerID string) error
}

// CollaborationService defines collaboration grant operations.
type CollaborationService interface {
	// Add grants edit rights and returns the collaboration id.
	Add(ctx context.Context, playlistID, userID string) (string, error)
	// Delete revokes the grant for (playlistID, userID).
	Delete(ctx context.Context, playlistID, userID string) error
}

// Handlers groups the HTTP endpoints for songs, users, and collaborations.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic; no state is shared across requests.
type Handlers struct {
	songSvc     SongService
	userSvc     UserService
	playlistSvc PlaylistService
	collabSvc   CollaborationService
}

// New constructs a Handlers instance bound to the given services.
func New(songSvc SongService, userSvc UserService, playlistSvc PlaylistService, collabSvc CollaborationService) *Handlers {
	return &Handlers{
		songSvc:     songSvc,
		userSvc:     userSvc,
		playlistSvc: playlistSvc,
		collabSvc:   collabSvc,
	}
}
