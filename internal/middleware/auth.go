package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-crm-server/internal/config"
	"clinic-crm-server/internal/core"
	"clinic-crm-server/internal/utils"
)

const identityKey = "sessionIdentity"

// AuthMiddleware creates a middleware for JWT authentication. On success it
// stores the caller's session identity in the request context; every handler
// downstream works from that one value, never from an ambient lookup.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		identity := core.Identity{Email: claims.Subject, Role: claims.Role}
		if !identity.Role.Valid() {
			utils.Unauthorized(c, "Invalid token: unrecognized role")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware for role-based authorization.
// It should be used *after* AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...core.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromContext(c)
		if !ok {
			utils.InternalServerError(c, "Session identity not found in context. AuthMiddleware might be missing.")
			c.Abort()
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if identity.Role == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			utils.Forbidden(c, "You do not have permission to access this resource.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentityFromContext returns the session identity stored by AuthMiddleware.
func GetIdentityFromContext(c *gin.Context) (core.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return core.Identity{}, false
	}
	identity, ok := value.(core.Identity)
	return identity, ok
}
