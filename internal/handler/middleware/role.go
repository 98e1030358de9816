package middleware

import (
	"github.com/gin-gonic/gin"

	"casamento/registry/internal/model"
	jwtpkg "casamento/registry/pkg/jwt"
	"casamento/registry/pkg/response"
)

// RequireRole gates a route group to one role. Must run after JWTAuth.
// Roles are fixed at signup, so the token claim is authoritative.
func RequireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsVal, exists := c.Get(ContextKeyUserClaims)
		if !exists {
			response.Unauthorized(c, "missing authentication")
			c.Abort()
			return
		}
		claims, ok := claimsVal.(*jwtpkg.Claims)
		if !ok {
			response.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		if model.UserRole(claims.Role) != role {
			response.Forbidden(c, "role "+string(role)+" required")
			c.Abort()
			return
		}

		c.Next()
	}
}
