package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/response"
	"github.com/syedahad2205/dajaj-pos/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware for operator routes
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("operator_email", claims.Email)
		c.Set("operator_name", claims.Name)

		c.Next()
	}
}

// OptionalAuthMiddleware tries to authenticate but doesn't fail if no token
// is provided. Used on the bill viewing route, where unauthenticated
// visitors may instead present a bill's public token.
func OptionalAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("operator_email", claims.Email)
		c.Set("operator_name", claims.Name)

		c.Next()
	}
}
