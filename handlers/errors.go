package handlers

import (
	"errors"
	"net/http"

	"podium/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status and a stable code
// the UI can branch on. SlotUnavailable gets its own code so the calendar
// can prompt re-selection instead of showing a generic failure.
func respondError(c *gin.Context, err error) {
	var (
		validationErr  *utils.ValidationError
		notFoundErr    *utils.NotFoundError
		unavailableErr *utils.SlotUnavailableError
		conflictErr    *utils.ConflictError
		stateErr       *utils.InvalidStateError
		storageErr     *utils.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "error": err.Error()})
	case errors.As(err, &unavailableErr):
		c.JSON(http.StatusConflict, gin.H{"code": "slot_unavailable", "error": err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"code": "conflict", "error": err.Error()})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"code": "invalid_state", "error": err.Error()})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": "storage_error", "error": "Storage temporarily unavailable. Please retry."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal", "error": "Unexpected error"})
	}
}

// subjectID reads the authenticated caller ID placed by the auth middleware.
func subjectID(c *gin.Context) (string, bool) {
	v, exists := c.Get("subjectID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
