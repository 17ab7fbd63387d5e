package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AnonymousOwner owns the settings of unauthenticated requests
const AnonymousOwner = "anonymous"

// GatewayAuth trusts user info from gateway headers (X-User-ID, X-User-Email, X-User-Role).
// The gateway validates credentials upstream; only use this behind it.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.GetHeader("X-User-ID")
		if userIDStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Missing X-User-ID header from gateway",
			})
			c.Abort()
			return
		}

		// Parse user ID (could be numeric or string depending on gateway)
		var userID uint
		if id, err := strconv.ParseUint(userIDStr, 10, 64); err == nil {
			userID = uint(id)
		}

		c.Set("user_id", userID)
		c.Set("user_id_str", userIDStr)
		c.Set("user_email", c.GetHeader("X-User-Email"))
		c.Set("user_role", c.GetHeader("X-User-Role"))

		c.Next()
	}
}

// GetOwner returns the key that scopes the current request's settings
func GetOwner(c *gin.Context) string {
	if id := c.GetString("user_id_str"); id != "" {
		return id
	}
	return AnonymousOwner
}
