package middleware

import (
	"net/http"
	"strings"

	"taskweave/models"
	"taskweave/utils"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key under which the session is stored.
const SessionKey = "session"

// SessionMiddleware validates the bearer token and attaches an explicit
// models.Session to the request context. Services never read user identity
// from anywhere else.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(SessionKey, models.Session{UserID: userID, Token: tokenString})
		c.Next()
	}
}

// GetSession retrieves the session placed by SessionMiddleware. The second
// return is false when the middleware did not run.
func GetSession(c *gin.Context) (models.Session, bool) {
	val, exists := c.Get(SessionKey)
	if !exists {
		return models.Session{}, false
	}
	sess, ok := val.(models.Session)
	return sess, ok
}
