// Collaboration HTTP handlers.
//
//   - POST   /collaborations  (grant edit rights)
//   - DELETE /collaborations  (revoke edit rights)
//
// Both endpoints require an authenticated caller and run the playlist
// ownership pre-condition before delegating: validation and authorization
// failures never reach the collaboration service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusicapp/go-music-backend/internal/http/middleware"
)

// CollaborationRequest is the JSON payload for granting or revoking a
// collaboration. The same shape serves both operations.
type CollaborationRequest struct {
	PlaylistID string `json:"playlistId" binding:"required" example:"playlist-141add05-4415-4938-b5a1-17e0d3171aff"`
	UserID     string `json:"userId"     binding:"required" example:"user-6f3b9ae1-62c4-46a2-9a3b-cdd2e67cba11"`
}

// PostCollaboration godoc
// @ID          postCollaboration
// @Summary     Grant playlist edit rights
// @Description The authenticated caller must own the playlist. Returns the collaboration id.
// @Tags        Collaborations
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body  body  handlers.CollaborationRequest  true  "Collaboration payload"
// @Success     201  {object}  handlers.Envelope
// @Failure     400  {object}  handlers.Envelope  "Validation or invariant failure"
// @Failure     403  {object}  handlers.Envelope  "Caller does not own the playlist"
// @Failure     404  {object}  handlers.Envelope  "Playlist not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /collaborations [post]
func (h *Handlers) PostCollaboration(c *gin.Context) {
	var req CollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	credentialID := middleware.CredentialID(c)

	if err := h.playlistSvc.VerifyOwner(ctx, req.PlaylistID, credentialID); err != nil {
		respondError(c, err)
		return
	}

	collaborationID, err := h.collabSvc.Add(ctx, req.PlaylistID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusCreated, "Kolaborasi berhasil ditambahkan", gin.H{"collaborationId": collaborationID})
}

// DeleteCollaboration godoc
// @ID          deleteCollaboration
// @Summary     Revoke playlist edit rights
// @Description The authenticated caller must own the playlist. Revoking a missing grant fails.
// @Tags        Collaborations
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body  body  handlers.CollaborationRequest  true  "Collaboration payload"
// @Success     200  {object}  handlers.Envelope
// @Failure     400  {object}  handlers.Envelope  "Validation or invariant failure"
// @Failure     403  {object}  handlers.Envelope  "Caller does not own the playlist"
// @Failure     404  {object}  handlers.Envelope  "Playlist not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /collaborations [delete]
func (h *Handlers) DeleteCollaboration(c *gin.Context) {
	var req CollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	credentialID := middleware.CredentialID(c)

	if err := h.playlistSvc.VerifyOwner(ctx, req.PlaylistID, credentialID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.collabSvc.Delete(ctx, req.PlaylistID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, "Kolaborasi berhasil dihapus", nil)
}
