package auth

import (
	"errors"
	"net/http"
	"strings"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"
	"levelup/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set by the auth middlewares.
const (
	UserIDKey  = "userID"
	GamerIDKey = "gamerID"
)

// bearerToken extracts the token from "Bearer <token>" or "Token <token>".
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 {
		return "", false
	}
	if parts[0] != "Bearer" && parts[0] != "Token" {
		return "", false
	}
	return parts[1], true
}

// resolve validates the token and loads the caller's gamer profile.
func resolve(c *gin.Context) (*models.Gamer, error) {
	tokenString, ok := bearerToken(c)
	if !ok {
		return nil, jwt.ErrInvalidToken
	}
	userID, err := jwt.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	var gamer models.Gamer
	if err := database.DB.Where("user_id = ?", userID).First(&gamer).Error; err != nil {
		return nil, err
	}
	return &gamer, nil
}

// AuthMiddleware requires a valid token whose account has a gamer profile.
// It sets userID and gamerID in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		gamer, err := resolve(c)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing authentication token"})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No gamer profile for this account"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
			}
			return
		}

		c.Set(UserIDKey, gamer.UserID)
		c.Set(GamerIDKey, gamer.ID)
		c.Next()
	}
}

// GamerID returns the authenticated caller's gamer ID, or 0 for anonymous requests.
func GamerID(c *gin.Context) uint {
	return c.GetUint(GamerIDKey)
}

// UserID returns the authenticated caller's account ID, or 0 for anonymous requests.
func UserID(c *gin.Context) uint {
	return c.GetUint(UserIDKey)
}
