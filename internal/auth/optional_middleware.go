package auth

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets userID and gamerID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if gamer, err := resolve(c); err == nil {
			c.Set(UserIDKey, gamer.UserID)
			c.Set(GamerIDKey, gamer.ID)
		}
		c.Next()
	}
}
