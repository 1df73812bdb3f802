// File: internal/handler/http/middleware/role_middleware.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

// Authorize is the pure authorization decision: the claims' role must be a
// known role, and must appear in the allowlist. An empty allowlist admits
// any authenticated caller with a valid role.
func Authorize(claims *interfaces.AccessClaims, allowed ...models.Role) error {
	if claims == nil {
		return domainErrors.ErrUnauthorized
	}
	if !claims.Role.Valid() {
		return domainErrors.ErrUnknownRole
	}
	if !models.Contains(allowed, claims.Role) {
		return domainErrors.ErrInsufficientRole
	}
	return nil
}

// RequireRoles gates a route group on the caller's role. It must run after
// AuthMiddleware.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := ClaimsFromContext(c)
		if err := Authorize(claims, allowed...); err != nil {
			if domainErrors.IsForbidden(err) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "insufficient role",
					"code":  domainErrors.CodeForbidden,
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
				"code":  domainErrors.CodeUnauthorized,
			})
			return
		}
		c.Next()
	}
}
