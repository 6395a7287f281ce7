package middleware

import (
	"net/http"
	"strings"

	userRepo "groomery/database/repository/user"
	"groomery/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and checks it against the
// stored token hash, so a revoked session stops working even before the
// token expires.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Query the database using the token hash.
		u, err := users.GetByTokenHash(utils.HashToken(tokenString))
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
			return
		}

		c.Set("userID", u.ID)
		c.Next()
	}
}
