// File: internal/handler/http/middleware/auth_middleware_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/handler/http/middleware"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/infrastructure/security"
)

func newTokenService(t *testing.T) (interfaces.TokenService, gin.HandlerFunc) {
	t.Helper()
	svc, err := security.NewJWTService(security.JWTConfig{
		Issuer:     "auth-service",
		Audience:   "auth-service-clients",
		AccessTTL:  time.Hour,
		RefreshTTL: time.Hour,
		Secret:     "middleware-test-secret",
	})
	require.NoError(t, err)
	return svc, middleware.AuthMiddleware(svc, zap.NewNop())
}

func setupAuthTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/test", func(c *gin.Context) {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	return router
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	_, mw := newTokenService(t)
	router := setupAuthTestRouter(mw)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	_, mw := newTokenService(t)
	router := setupAuthTestRouter(mw)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, mw := newTokenService(t)
	router := setupAuthTestRouter(mw)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_ValidTokenPassesClaims(t *testing.T) {
	svc, mw := newTokenService(t)
	router := setupAuthTestRouter(mw)

	token, err := svc.GenerateAccessToken(uuid.New(), models.RoleVIP, "UTC")
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "vip")
}
