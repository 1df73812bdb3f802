// File: internal/handler/http/middleware/auth_middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
)

const (
	AuthHeaderKey  = "Authorization"
	AuthTypeBearer = "bearer"

	GinContextClaimsKey = "claims"
	GinContextUserIDKey = "userID"
	GinContextRoleKey   = "role"
)

// AuthMiddleware validates the bearer access token and stores the verified
// claims in the gin context for downstream handlers.
func AuthMiddleware(tokens interfaces.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authorization header required",
				"code":  domainErrors.CodeUnauthorized,
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], AuthTypeBearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authorization header format must be Bearer <token>",
				"code":  domainErrors.CodeUnauthorized,
			})
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			logger.Warn("invalid access token", zap.Error(err))
			msg := "invalid token"
			if errors.Is(err, domainErrors.ErrExpiredToken) {
				msg = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msg,
				"code":  domainErrors.CodeUnauthorized,
			})
			return
		}

		c.Set(GinContextClaimsKey, claims)
		c.Set(GinContextUserIDKey, claims.UserID)
		c.Set(GinContextRoleKey, claims.Role)

		c.Next()
	}
}

// ClaimsFromContext retrieves the verified claims stored by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*interfaces.AccessClaims, bool) {
	v, ok := c.Get(GinContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*interfaces.AccessClaims)
	return claims, ok
}
