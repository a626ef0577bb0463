// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the uniform response envelope and the single
// error-to-response translator shared by every endpoint.
//
// Conventions:
//   - Success responses are `{status:"success", message?, data?}` with 201 for
//     creation and 200 otherwise.
//   - Domain errors (internal/errs) become `{status:"fail", message}` with the
//     status fixed by their kind.
//   - Anything else becomes `{status:"error", message:<generic text>}` with
//     status 500; the original error is logged with request context and never
//     leaks to the caller.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusicapp/go-music-backend/internal/errs"
	"github.com/openmusicapp/go-music-backend/internal/http/middleware"
)

// genericServerMessage is the operator-facing text returned for unexpected
// failures. The real error only reaches the logs.
const genericServerMessage = "Maaf, terjadi kegagalan pada server kami."

// Envelope is the uniform response wrapper returned by all endpoints.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// success writes a success envelope with the given HTTP status.
func success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Status: "success", Message: message, Data: data})
}

// fail aborts the request with a fail envelope. Used for client-visible
// domain errors only; unexpected errors go through respondError.
func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Status: "fail", Message: msg})
}

// Fail is the exported variant of fail(). External packages (e.g. router
// fallbacks) call it to keep error envelopes consistent without depending on
// unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// respondError translates err into the envelope contract.
//
// Domain errors map to their fixed status and message. Everything else is an
// unexpected server error: the raw value is logged with the request-scoped
// logger and the caller sees only the generic 500 body.
func respondError(c *gin.Context, err error) {
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		fail(c, domainErr.Status, domainErr.Message)
		return
	}

	middleware.LoggerFrom(c).Error().
		Err(err).
		Str("path", c.FullPath()).
		Msg("unexpected error")

	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{
		Status:  "error",
		Message: genericServerMessage,
	})
}

// respondValidation short-circuits a request whose payload failed binding,
// before any service call happens.
func respondValidation(c *gin.Context, err error) {
	respondError(c, errs.NewValidationError(err.Error()))
}
