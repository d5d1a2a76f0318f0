package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

const SessionContextKey = "session"

// Auth resolves the bearer token against the session store and aborts with
// 401 when the token is missing, unknown, or expired.
func Auth(sessions database.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			zap.L().Error("Session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the resolved session has the admin
// role. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSession(c)
		if err != nil || session.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// GetSession returns the session placed in the context by Auth.
func GetSession(c *gin.Context) (*models.Session, error) {
	if val, ok := c.Get(SessionContextKey); ok {
		if session, ok := val.(*models.Session); ok {
			return session, nil
		}
	}
	return nil, errors.New("session not found in context")
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
