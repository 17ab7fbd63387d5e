package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoAuth is a pass-through middleware for when AUTH_MODE=none.
// Every request shares the anonymous settings.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uint(0))
		c.Set("user_id_str", AnonymousOwner)
		c.Next()
	}
}
