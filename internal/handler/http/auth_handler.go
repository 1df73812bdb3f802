// File: internal/handler/http/auth_handler.go
package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/config"
	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/handler/http/middleware"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/service"
)

// AuthHandler handles the account lifecycle HTTP requests.
type AuthHandler struct {
	logger      *zap.Logger
	authService *service.AuthService
	limiter     interfaces.RateLimiter
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	logger *zap.Logger,
	authService *service.AuthService,
	limiter interfaces.RateLimiter,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		logger:      logger.Named("auth_handler"),
		authService: authService,
		limiter:     limiter,
		cfg:         cfg,
	}
}

// Signup registers a new account.
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusCreated, gin.H{
		"message": "account created",
		"user":    user.ToResponse(),
	})
}

// Signin verifies credentials and issues a token pair.
// POST /signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	tokenPair, user, err := h.authService.Signin(c.Request.Context(), req)
	if err != nil {
		// A missing account and a wrong password answer identically.
		if domainErrors.IsNotFound(err) || domainErrors.IsUnauthorized(err) {
			RespondWithError(c, http.StatusUnauthorized, "invalid credentials", domainErrors.CodeUnauthorized, h.logger)
			return
		}
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{
		"user":   user.ToResponse(),
		"tokens": tokenPair,
	})
}

// Refresh exchanges a live refresh token for a fresh pair.
// POST /token-refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	tokenPair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusCreated, gin.H{"tokens": tokenPair})
}

// ForgotPassword starts the password reset workflow. The response never
// discloses whether the email has an account behind it.
// POST /forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	rule := h.cfg.Security.RateLimiting.ForgotPerEmail
	if rule.Enabled {
		key := fmt.Sprintf("forgot:%s", req.Email)
		allowed, err := h.limiter.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			h.logger.Error("rate limiter failed", zap.Error(err), zap.String("key", key))
		} else if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%.0f", rule.Window.Seconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		if domainErrors.IsMailDelivery(err) {
			RespondWithDomainError(c, err, h.logger)
			return
		}
		// Unexpected failures still answer generically; details stay in logs.
		h.logger.Error("forgot password failed", zap.Error(err))
	}

	RespondWithMessage(c, http.StatusOK, "if the account exists, a reset email has been sent")
}

// ResetPassword consumes a reset token and installs the new password.
// POST /reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "password updated")
}

// Signout revokes the caller's refresh token. The caller may only sign out
// their own session.
// POST /signout
func (h *AuthHandler) Signout(c *gin.Context) {
	var req models.SignoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", domainErrors.CodeUnauthorized, h.logger)
		return
	}
	if claims.UserID != req.UserID {
		RespondWithError(c, http.StatusForbidden, "cannot sign out another account", domainErrors.CodeForbidden, h.logger)
		return
	}

	if err := h.authService.Signout(c.Request.Context(), req.UserID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "signed out")
}

// DeleteUser removes an account and everything that hangs off it. The route
// is gated on the owner role by the router.
// DELETE /delete-user/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid user id", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), userID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "account deleted")
}
