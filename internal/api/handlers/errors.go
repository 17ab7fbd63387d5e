package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/fretboard-api/internal/logger"
	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrFretboardNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrTitleNotUnique):
		return http.StatusConflict
	case errors.Is(err, services.ErrFieldsRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidViewOption),
		errors.Is(err, services.ErrInvalidLabelMode),
		theory.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response; server errors are logged and sent to Sentry
func respondError(c *gin.Context, action string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(action, err, logger.WithContext(c))
		c.JSON(status, gin.H{
			"error":      action,
			"request_id": c.GetString("request_id"),
		})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
