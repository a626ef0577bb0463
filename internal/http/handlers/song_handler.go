// Song HTTP handlers.
//
// This file exposes REST endpoints for the song catalog:
//   - POST   /songs       (create)
//   - GET    /songs       (list, reduced projection)
//   - GET    /songs/{id}  (detail)
//   - PUT    /songs/{id}  (update)
//   - DELETE /songs/{id}  (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusicapp/go-music-backend/internal/repo"
)

// SongRequest is the JSON payload for creating or updating a song.
// Duration is optional; every other field is required.
type SongRequest struct {
	Title     string `json:"title"     binding:"required" example:"Lagu A"`
	Year      int    `json:"year"      binding:"required,gte=1500,lte=2100" example:"2020"`
	Performer string `json:"performer" binding:"required" example:"X"`
	Genre     string `json:"genre"     binding:"required" example:"Pop"`
	Duration  *int   `json:"duration"  binding:"omitempty,gte=0" example:"200"`
}

// fields converts the payload into the repository's field set.
func (r SongRequest) fields() repo.SongFields {
	return repo.SongFields{
		Title:     r.Title,
		Year:      r.Year,
		Performer: r.Performer,
		Genre:     r.Genre,
		Duration:  r.Duration,
	}
}

// PostSong godoc
// @ID          postSong
// @Summary     Add a song
// @Description Validates the payload, inserts a song, and returns its id.
// @Tags        Songs
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SongRequest  true  "Song payload"
// @Success     201  {object}  handlers.Envelope
// @Failure     400  {object}  handlers.Envelope  "Validation failure"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /songs [post]
func (h *Handlers) PostSong(c *gin.Context) {
	var req SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	songID, err := h.songSvc.Add(c.Request.Context(), req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusCreated, "Lagu berhasil ditambahkan", gin.H{"songId": songID})
}

// GetSongs godoc
// @ID          getSongs
// @Summary     List songs
// @Description Returns id, title, and performer of every song. No pagination.
// @Tags        Songs
// @Produce     json
// @Success     200  {object}  handlers.Envelope
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /songs [get]
func (h *Handlers) GetSongs(c *gin.Context) {
	songs, err := h.songSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"songs": songs})
}

// GetSong godoc
// @ID          getSong
// @Summary     Get a song by id
// @Tags        Songs
// @Produce     json
// @Param       id  path  string  true  "Song ID"
// @Success     200  {object}  handlers.Envelope
// @Failure     404  {object}  handlers.Envelope  "Song not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /songs/{id} [get]
func (h *Handlers) GetSong(c *gin.Context) {
	song, err := h.songSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"song": song})
}

// PutSong godoc
// @ID          putSong
// @Summary     Update a song
// @Description Rewrites all mutable fields and refreshes updatedAt.
// @Tags        Songs
// @Accept      json
// @Produce     json
// @Param       id    path  string                true  "Song ID"
// @Param       body  body  handlers.SongRequest  true  "Song payload"
// @Success     200  {object}  handlers.Envelope
// @Failure     400  {object}  handlers.Envelope  "Validation failure"
// @Failure     404  {object}  handlers.Envelope  "Song not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /songs/{id} [put]
func (h *Handlers) PutSong(c *gin.Context) {
	var req SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.songSvc.Update(c.Request.Context(), c.Param("id"), req.fields()); err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, "Lagu berhasil diperbarui", nil)
}

// DeleteSong godoc
// @ID          deleteSong
// @Summary     Delete a song
// @Description Removes the song. Deleting an already-deleted id fails with 404.
// @Tags        Songs
// @Produce     json
// @Param       id  path  string  true  "Song ID"
// @Success     200  {object}  handlers.Envelope
// @Failure     404  {object}  handlers.Envelope  "Song not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /songs/{id} [delete]
func (h *Handlers) DeleteSong(c *gin.Context) {
	if err := h.songSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, "Lagu berhasil dihapus", nil)
}
