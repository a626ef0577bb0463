// User HTTP handlers.
//
//   - POST /users       (register)
//   - GET  /users/{id}  (detail)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest is the JSON payload for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=50" example:"johndoe"`
	Password string `json:"password" binding:"required" example:"secret"`
	Fullname string `json:"fullname" binding:"required" example:"John Doe"`
}

// PostUser godoc
// @ID          postUser
// @Summary     Register a user
// @Description Validates the payload, rejects taken usernames, and returns the new user id.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateUserRequest  true  "User payload"
// @Success     201  {object}  handlers.Envelope
// @Failure     400  {object}  handlers.Envelope  "Validation failure or username taken"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /users [post]
func (h *Handlers) PostUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	userID, err := h.userSvc.Add(c.Request.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusCreated, "User berhasil ditambahkan", gin.H{"userId": userID})
}

// GetUser godoc
// @ID          getUser
// @Summary     Get a user by id
// @Description Returns the public profile; the password hash is never serialized.
// @Tags        Users
// @Produce     json
// @Param       id  path  string  true  "User ID"
// @Success     200  {object}  handlers.Envelope
// @Failure     404  {object}  handlers.Envelope  "User not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /users/{id} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	user, err := h.userSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"user": user})
}
