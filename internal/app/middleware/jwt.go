package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/error/response"
)

const (
	// ContextKeyAdminID is the gin context key for the authenticated admin id
	ContextKeyAdminID = "admin_id"
	// ContextKeyUsername is the gin context key for the authenticated username
	ContextKeyUsername = "username"
	// ContextKeyRole is the gin context key for the authenticated role
	ContextKeyRole = "role"
)

// Authenticate verifies the Bearer token and stores the registrar identity
// on the request context.
func Authenticate(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := jwtService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextKeyAdminID, claims.AdminID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}
