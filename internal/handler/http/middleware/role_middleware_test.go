// File: internal/handler/http/middleware/role_middleware_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/handler/http/middleware"
)

func claimsFor(role models.Role) *interfaces.AccessClaims {
	return &interfaces.AccessClaims{UserID: uuid.New(), Role: role}
}

func TestAuthorize_AllowedRole(t *testing.T) {
	err := middleware.Authorize(claimsFor(models.RoleAdmin), models.RoleOwner, models.RoleAdmin)
	assert.NoError(t, err)
}

func TestAuthorize_DisallowedRole(t *testing.T) {
	err := middleware.Authorize(claimsFor(models.RoleUser), models.RoleOwner, models.RoleAdmin)
	assert.ErrorIs(t, err, domainErrors.ErrInsufficientRole)
}

func TestAuthorize_UnknownRoleRejected(t *testing.T) {
	err := middleware.Authorize(claimsFor(models.Role("superuser")), models.RoleOwner)
	assert.ErrorIs(t, err, domainErrors.ErrUnknownRole)
}

func TestAuthorize_NilClaims(t *testing.T) {
	err := middleware.Authorize(nil, models.RoleOwner)
	assert.ErrorIs(t, err, domainErrors.ErrUnauthorized)
}

func TestAuthorize_EmptyAllowlistAdmitsAnyValidRole(t *testing.T) {
	assert.NoError(t, middleware.Authorize(claimsFor(models.RoleGuest)))
	assert.Error(t, middleware.Authorize(claimsFor(models.Role("madeup"))))
}

func setupRoleTestRouter(claims *interfaces.AccessClaims, allowed ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if claims != nil {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.GinContextClaimsKey, claims)
			c.Next()
		})
	}
	router.Use(middleware.RequireRoles(allowed...))

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "passed"})
	})
	return router
}

func TestRequireRoles_ForbiddenForUserRole(t *testing.T) {
	router := setupRoleTestRouter(claimsFor(models.RoleUser), models.RoleOwner, models.RoleAdmin)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireRoles_PassesAllowedRole(t *testing.T) {
	router := setupRoleTestRouter(claimsFor(models.RoleOwner), models.RoleOwner)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireRoles_MissingClaims(t *testing.T) {
	router := setupRoleTestRouter(nil, models.RoleOwner)

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
