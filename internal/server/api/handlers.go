package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageLimit  = 10
	defaultPageOffset = 0
)

// pathID validates the :id path parameter as a UUID. An invalid value is
// indistinguishable from a missing row, so it answers 404 rather than
// leaking the difference (and rather than sending garbage to the database).
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return "", false
	}
	return id, true
}

// paginationParams reads limit/offset query parameters with defaults.
func paginationParams(c *gin.Context) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit <= 0 {
		abortBadRequest(c, "invalid limit")
		return 0, 0, false
	}

	offset, err = strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(defaultPageOffset)))
	if err != nil || offset < 0 {
		abortBadRequest(c, "invalid offset")
		return 0, 0, false
	}

	return limit, offset, true
}
