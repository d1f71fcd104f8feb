package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles is role-based access control on top of Auth. It only lets
// through requests whose decoded role is in allowedRoles.
// Example:
//
//	r.PATCH("/:id/status", Auth(secret), RequireRoles("SUPER_ADMIN"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToUpper(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := CurrentUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"statusCode": http.StatusUnauthorized,
				"message":    "unauthorized: role missing from context",
			})
			return
		}

		if _, ok := allowed[strings.ToUpper(strings.TrimSpace(role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success":    false,
				"statusCode": http.StatusForbidden,
				"message":    "forbidden: role not allowed",
			})
			return
		}

		c.Next()
	}
}
