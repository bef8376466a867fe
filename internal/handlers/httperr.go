package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/imadhurgupta/bio-keeper/internal/helpers"
	"github.com/imadhurgupta/bio-keeper/internal/models"
)

// statusForError maps the sentinel taxonomy to HTTP statuses. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrAuthFailed):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrEmailAlreadyInUse):
		return http.StatusConflict
	case errors.Is(err, models.ErrWeakPassword):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrStore), errors.Is(err, models.ErrUpload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
}

// claimsFromContext pulls the identity the auth middleware resolved for this
// request.
func claimsFromContext(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	raw, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := raw.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}
