package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
)

const (
	// ContextKeySession is the Gin context key for the resolved session.
	ContextKeySession = "session"
)

// RequireSession validates the console token from the Authorization header
// and loads its backing session. The platform token is placed on the
// request context so downstream calls carry it explicitly.
func RequireSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		sess, err := manager.Resolve(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionExpired)
				return
			}
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeySession, sess)
		c.Request = c.Request.WithContext(upstream.WithToken(c.Request.Context(), sess.Token))
		c.Next()
	}
}

// GetSession retrieves the resolved session from the Gin context.
func GetSession(c *gin.Context) (session.Session, bool) {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := val.(session.Session)
	return sess, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return ""
}
