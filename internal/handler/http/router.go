// File: internal/handler/http/router.go
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/config"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/handler/http/middleware"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/service"
)

// RouterDeps carries everything route setup needs.
type RouterDeps struct {
	AuthService   *service.AuthService
	StreamService *service.StreamService
	TokenService  interfaces.TokenService
	Limiter       interfaces.RateLimiter
	Health        *HealthHandler
	Cfg           *config.Config
	Logger        *zap.Logger
}

// SetupRouter wires middleware and routes.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CorsMiddleware(deps.Cfg.Server.CORSOrigins))

	authHandler := NewAuthHandler(deps.Logger, deps.AuthService, deps.Limiter, deps.Cfg)
	streamHandler := NewStreamHandler(deps.Logger, deps.StreamService)

	router.GET("/health", deps.Health.Health)
	router.GET("/readiness", deps.Health.Readiness)

	authn := middleware.AuthMiddleware(deps.TokenService, deps.Logger)

	// Account lifecycle. Signin carries a per-IP limit; forgot-password is
	// limited per email inside the handler.
	router.POST("/signup", authHandler.Signup)
	router.POST("/signin",
		middleware.RateLimitMiddleware(deps.Limiter, deps.Cfg.Security.RateLimiting.SigninPerIP, "signin", deps.Logger),
		authHandler.Signin)
	router.POST("/token-refresh", authHandler.Refresh)
	router.POST("/forgot-password", authHandler.ForgotPassword)
	router.POST("/reset-password", authHandler.ResetPassword)
	router.POST("/signout", authn, authHandler.Signout)
	router.DELETE("/delete-user/:id",
		authn,
		middleware.RequireRoles(models.RoleOwner),
		authHandler.DeleteUser)

	// Social resources.
	router.GET("/streams/:id", streamHandler.GetStream)
	router.GET("/streams/:id/likes", streamHandler.CountLikes)
	router.GET("/users/:id/streams", streamHandler.ListUserStreams)
	router.GET("/categories", streamHandler.ListCategories)

	protected := router.Group("/")
	protected.Use(authn)
	{
		protected.POST("/streams", streamHandler.CreateStream)
		protected.PATCH("/streams/:id", streamHandler.UpdateStream)
		protected.DELETE("/streams/:id", streamHandler.DeleteStream)
		protected.POST("/streams/:id/like", streamHandler.Like)
		protected.DELETE("/streams/:id/like", streamHandler.Unlike)

		protected.POST("/users/:id/follow", streamHandler.Follow)
		protected.DELETE("/users/:id/follow", streamHandler.Unfollow)

		protected.POST("/images/presign", streamHandler.PresignImageUpload)
		protected.POST("/images", streamHandler.ConfirmImage)
		protected.DELETE("/images/:id", streamHandler.DeleteImage)

		admin := protected.Group("/")
		admin.Use(middleware.RequireRoles(models.RoleOwner, models.RoleAdmin))
		{
			admin.POST("/categories", streamHandler.CreateCategory)
		}
	}

	return router
}
