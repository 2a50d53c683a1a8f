package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio/api/internal/repository"
	"portfolio/api/internal/session"
)

const CurrentUserKey = "current_user"

// Auth resolves a bearer token to a user. Validation refreshes the
// session's last-seen time; a session whose user no longer exists is
// revoked on the spot.
func Auth(users repository.UserStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		sess, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			code := "invalid_session"
			if errors.Is(err, session.ErrExpired) {
				code = "session_expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
			return
		}

		user, err := users.GetByID(c.Request.Context(), sess.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				_ = sessions.Revoke(c.Request.Context(), token)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, or ""
// when the header is missing or not a bearer scheme.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
