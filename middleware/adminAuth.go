package middleware

import (
	"net/http"
	"strings"

	"localspot/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the admin surface. It expects a bearer token
// issued by the admin login endpoint.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateAdminToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminEmail", claims["sub"])
		c.Set("isAdmin", true)
		c.Next()
	}
}
