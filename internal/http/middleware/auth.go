package middleware

import (
	"net/http"
	"strings"

	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userRoleKey  = "userRole"
)

// Auth verifies the bearer token and stores the decoded identity on the
// context. Handlers read it through CurrentUserID; services receive the id
// as an explicit argument.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"statusCode": http.StatusUnauthorized,
				"message":    "missing bearer token",
			})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"statusCode": http.StatusUnauthorized,
				"message":    "invalid or expired token",
			})
			return
		}

		c.Set(userIDKey, claims.ID)
		c.Set(userEmailKey, claims.Email)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

func CurrentUserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}
