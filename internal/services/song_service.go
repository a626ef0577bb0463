// Package services defines the business logic for songs, users, playlists,
// and collaborations. Each service owns a GORM handle plus a repository
// contract and translates persistence failures into the closed error
// taxonomy (internal/errs) so handlers can map them to HTTP responses
// uniformly.
//
// This file implements the SongService, which manages the song catalog
// lifecycle: create, list (reduced projection), point lookup, update, and
// delete. Zero affected rows is always a domain failure, never ignored.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
	"github.com/openmusicapp/go-music-backend/internal/errs"
	"github.com/openmusicapp/go-music-backend/internal/repo"
)

// SongRepo defines the repository contract required by SongService.
type SongRepo interface {
	// CreateSong inserts a new song row and returns the persisted entity.
	CreateSong(ctx context.Context, db *gorm.DB, f repo.SongFields) (*domain.Song, error)

	// ListSongs returns the id/title/performer projection of every song.
	ListSongs(ctx context.Context, db *gorm.DB) ([]domain.SongSummary, error)

	// GetSong fetches a song by id.
	GetSong(ctx context.Context, db *gorm.DB, id string) (*domain.Song, error)

	// UpdateSong rewrites a song's fields and refreshes updated_at.
	UpdateSong(ctx context.Context, db *gorm.DB, id string, f repo.SongFields) error

	// DeleteSong removes a song by id.
	DeleteSong(ctx context.Context, db *gorm.DB, id string) error
}

// SongService provides catalog operations over songs.
type SongService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the song repository used by this service.
	Repo SongRepo
}

// NewSongService constructs a SongService bound to db and r.
func NewSongService(db *gorm.DB, r SongRepo) *SongService {
	return &SongService{DB: db, Repo: r}
}

// Add inserts a new song and returns its generated id. An insert that does
// not report exactly one row is an invariant violation; any other failure is
// propagated as an unexpected error.
func (s *SongService) Add(ctx context.Context, f repo.SongFields) (string, error) {
	song, err := s.Repo.CreateSong(ctx, s.DB, f)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", errs.NewInvariantError("Lagu gagal ditambahkan")
		}
		return "", err
	}
	return song.ID, nil
}

// List returns the reduced summaries of all songs. An empty catalog yields
// an empty slice, not an error.
func (s *SongService) List(ctx context.Context) ([]domain.SongSummary, error) {
	return s.Repo.ListSongs(ctx, s.DB)
}

// Get fetches a song by id, failing with a not-found error when no row
// matches.
func (s *SongService) Get(ctx context.Context, id string) (*domain.Song, error) {
	song, err := s.Repo.GetSong(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errs.NewNotFoundError("Lagu tidak ditemukan")
		}
		return nil, err
	}
	return song, nil
}

// Update rewrites the song's fields, failing with a not-found error when
// zero rows are affected.
func (s *SongService) Update(ctx context.Context, id string, f repo.SongFields) error {
	if err := s.Repo.UpdateSong(ctx, s.DB, id, f); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.NewNotFoundError("Gagal memperbarui lagu. Id tidak ditemukan")
		}
		return err
	}
	return nil
}

// Delete removes the song, failing with a not-found error when zero rows are
// affected. Deleting the same id twice therefore fails on the second call.
func (s *SongService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteSong(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.NewNotFoundError("Lagu gagal dihapus. Id tidak ditemukan")
		}
		return err
	}
	return nil
}
