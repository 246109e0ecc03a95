package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // Header parsing

	"github.com/gin-gonic/gin" // Gin web framework

	"finledger/internal/utils" // JWT utility functions
)

// JWTAuthMiddleware validates bearer tokens and stores the authenticated
// user id in the gin context. Every ledger operation is scoped to this id.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID) // Resolved caller identity
		c.Next()
	}
}
