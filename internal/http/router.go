// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, compression,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/openmusicapp/go-music-backend/internal/auth"
	"github.com/openmusicapp/go-music-backend/internal/config"
	"github.com/openmusicapp/go-music-backend/internal/domain"
	"github.com/openmusicapp/go-music-backend/internal/http/handlers"
	"github.com/openmusicapp/go-music-backend/internal/http/middleware"
	"github.com/openmusicapp/go-music-backend/internal/repo"
	"github.com/openmusicapp/go-music-backend/internal/services"
)

// The repo shims below adapt the repository free functions to the service
// interfaces. This keeps services decoupled from the concrete repo package
// while reusing the existing functions.

type songRepoShim struct{}

func (songRepoShim) CreateSong(ctx context.Context, db *gorm.DB, f repo.SongFields) (*domain.Song, error) {
	return repo.CreateSong(ctx, db, f)
}

func (songRepoShim) ListSongs(ctx context.Context, db *gorm.DB) ([]domain.SongSummary, error) {
	return repo.ListSongs(ctx, db)
}

func (songRepoShim) GetSong(ctx context.Context, db *gorm.DB, id string) (*domain.Song, error) {
	return repo.GetSong(ctx, db, id)
}

func (songRepoShim) UpdateSong(ctx context.Context, db *gorm.DB, id string, f repo.SongFields) error {
	return repo.UpdateSong(ctx, db, id, f)
}

func (songRepoShim) DeleteSong(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteSong(ctx, db, id)
}

type userRepoShim struct{}

func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, username, hashedPassword, fullname string) (*domain.User, error) {
	return repo.CreateUser(ctx, db, username, hashedPassword, fullname)
}

func (userRepoShim) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return repo.GetUser(ctx, db, id)
}

func (userRepoShim) CountUsersByUsername(ctx context.Context, db *gorm.DB, username string) (int64, error) {
	return repo.CountUsersByUsername(ctx, db, username)
}

type playlistRepoShim struct{}

func (playlistRepoShim) GetPlaylist(ctx context.Context, db *gorm.DB, id string) (*domain.Playlist, error) {
	return repo.GetPlaylist(ctx, db, id)
}

type collaborationRepoShim struct{}

func (collaborationRepoShim) CreateCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) (*domain.Collaboration, error) {
	return repo.CreateCollaboration(ctx, db, playlistID, userID)
}

func (collaborationRepoShim) DeleteCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) error {
	return repo.DeleteCollaboration(ctx, db, playlistID, userID)
}

func (collaborationRepoShim) GetCollaboration(ctx context.Context, db *gorm.DB, playlistID, userID string) (*domain.Collaboration, error) {
	return repo.GetCollaboration(ctx, db, playlistID, userID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics and /metrics endpoint
//  8. Rate limiter (per credential/IP)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(1 << 20))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByCredentialOrIP())
	r.Use(rl.Handler())

	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, "Resource tidak ditemukan")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, "Metode tidak diizinkan")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db
	collabSvc := services.NewCollaborationService(db, collaborationRepoShim{})
	playlistSvc := services.NewPlaylistService(db, playlistRepoShim{})
	playlistSvc.Collaborations = collabSvc
	songSvc := services.NewSongService(db, songRepoShim{})
	userSvc := services.NewUserService(db, userRepoShim{})
	userSvc.BcryptCost = cfg.BcryptCost

	h := handlers.New(songSvc, userSvc, playlistSvc, collabSvc)
	verifier := &auth.Verifier{Secret: []byte(cfg.JWTSecret)}

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Songs
		api.POST("/songs", h.PostSong)
		api.GET("/songs", h.GetSongs)
		api.GET("/songs/:id", h.GetSong)
		api.PUT("/songs/:id", h.PutSong)
		api.DELETE("/songs/:id", h.DeleteSong)

		// Users
		api.POST("/users", h.PostUser)
		api.GET("/users/:id", h.GetUser)

		// Collaborations (authenticated)
		collab := api.Group("/collaborations", middleware.RequireAuth(verifier))
		collab.POST("", h.PostCollaboration)
		collab.DELETE("", h.DeleteCollaboration)
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader. Requests exceeding the cap error on body read.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
