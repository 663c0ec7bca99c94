package handlers

import (
	"net/http"

	apperrors "pc-build-tracker-backend/internal/errors"
	"pc-build-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusForError maps typed application errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsStorage(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes err as a JSON error body with the matching status.
// Storage and unexpected failures are logged and answered with a generic message.
func respondWithError(c *gin.Context, err error) {
	status := statusForError(err)

	switch status {
	case http.StatusServiceUnavailable:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Storage failure")
		c.JSON(status, ErrorResponse{Error: "storage temporarily unavailable"})
	case http.StatusInternalServerError:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Unexpected error")
		c.JSON(status, ErrorResponse{Error: "internal server error"})
	default:
		c.JSON(status, ErrorResponse{Error: err.Error()})
	}
}
