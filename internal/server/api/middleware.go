package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/auth"
)

const principalKey = "principal"

// authenticate extracts the bearer token from the Authorization header,
// verifies it, and stores the resulting Principal in the request context.
// Absent or malformed headers abort with 401 before any handler runs.
func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeaderName)
	if !strings.HasPrefix(header, common.BearerPrefix) {
		s.abortWithError(c, common.ErrMissingCredentials)
		return
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
	if raw == "" {
		s.abortWithError(c, common.ErrMissingCredentials)
		return
	}

	principal, err := auth.VerifyToken(raw, s.jwtSecret, s.signingMethod)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Set(principalKey, principal)
	c.Next()
}

// requireRole gates a route on the authenticated principal's role.
// Must run after authenticate.
func (s *Server) requireRole(required auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authorize(principalFrom(c), required); err != nil {
			s.abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

// requestLogger tags every request with a generated ID and logs method,
// path, status, and duration after the handler chain completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
