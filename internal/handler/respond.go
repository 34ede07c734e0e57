package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/model"
	"staffhub/pkg/apperr"
)

// respondError translates the error taxonomy into HTTP status codes.
// Anything outside the taxonomy is a store-level failure surfaced as 500.
func respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Not found", err.Error()))
	case errors.Is(err, apperr.ErrMissingArgument):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Missing required argument", err.Error()))
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Invalid credentials", ""))
	case apperr.IsWeakPassword(err):
		c.JSON(http.StatusUnprocessableEntity, model.NewErrorResponse(err.Error(), ""))
	case apperr.IsDuplicateKey(err):
		c.JSON(http.StatusConflict, model.NewErrorResponse(err.Error(), ""))
	case apperr.IsInvalidIdentifier(err):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid identifier", err.Error()))
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(ve.Message, ""))
	default:
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal error", err.Error()))
	}
}
