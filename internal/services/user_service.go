// Package services – UserService
//
// This file implements the UserService, which registers accounts and serves
// point lookups. Usernames are unique: the service rejects a taken username
// before inserting, and a concurrent insert racing past that check is caught
// by the unique index and reported with the same message. Passwords are
// hashed with bcrypt before they reach the repository.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/domain"
	"github.com/openmusicapp/go-music-backend/internal/errs"
	"github.com/openmusicapp/go-music-backend/internal/repo"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	// CreateUser inserts a new user row with an already-hashed password.
	CreateUser(ctx context.Context, db *gorm.DB, username, hashedPassword, fullname string) (*domain.User, error)

	// GetUser fetches a user by id.
	GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error)

	// CountUsersByUsername reports how many rows carry username.
	CountUsersByUsername(ctx context.Context, db *gorm.DB, username string) (int64, error)
}

// UserService provides account registration and lookup.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo

	// BcryptCost selects the bcrypt work factor; <= 0 uses the library default.
	BcryptCost int
}

// NewUserService constructs a UserService with the default bcrypt cost.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r, BcryptCost: bcrypt.DefaultCost}
}

// Add registers a new account and returns its generated id.
//
// Failure modes:
//   - username already taken (pre-check or unique-index race): invariant error
//   - insert affecting zero rows: invariant error
//   - anything else (hashing, driver failure): propagated unexpected error
func (s *UserService) Add(ctx context.Context, username, password, fullname string) (string, error) {
	taken, err := s.Repo.CountUsersByUsername(ctx, s.DB, username)
	if err != nil {
		return "", err
	}
	if taken > 0 {
		return "", errs.NewInvariantError("Gagal menambahkan user. Username sudah digunakan.")
	}

	cost := s.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	u, err := s.Repo.CreateUser(ctx, s.DB, username, string(hashed), fullname)
	if err != nil {
		if isDuplicate(err) {
			return "", errs.NewInvariantError("Gagal menambahkan user. Username sudah digunakan.")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return "", errs.NewInvariantError("User gagal ditambahkan")
		}
		return "", err
	}
	return u.ID, nil
}

// Get fetches a user by id, failing with a not-found error when no row
// matches. The password hash never leaves this layer in responses; the
// domain model excludes it from serialization.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.Repo.GetUser(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errs.NewNotFoundError("User tidak ditemukan")
		}
		return nil, err
	}
	return u, nil
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite: "UNIQUE constraint failed"
	// Postgres: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
