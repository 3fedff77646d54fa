package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
)

// statusForError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized (including common.ErrHashing) is a server fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrMissingCredentials),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrMalformedToken),
		errors.Is(err, common.ErrUnknownAlgorithm):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrInsufficientPermission):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrInsufficientInventory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError translates err into an HTTP response and stops the handler
// chain. Internal faults are logged and masked; client errors carry their
// message in a "detail" field.
func (s *Server) abortWithError(c *gin.Context, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "internal error", "error", err.Error())
		c.AbortWithStatusJSON(status, gin.H{"detail": "internal error"})
		return
	}

	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(status, gin.H{"detail": err.Error()})
}

// abortBadRequest reports a request that failed binding or validation.
func abortBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": msg})
}
