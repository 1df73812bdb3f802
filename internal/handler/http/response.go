// File: internal/handler/http/response.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
)

// ResponseError is the error envelope every failed request returns.
type ResponseError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// RespondWithError sends an error envelope and logs it at the boundary.
func RespondWithError(c *gin.Context, statusCode int, message string, errorCode string, logger *zap.Logger) {
	logger.Error("API error response",
		zap.Int("status_code", statusCode),
		zap.String("error_message", message),
		zap.String("error_code", errorCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	c.JSON(statusCode, ResponseError{
		Error: message,
		Code:  errorCode,
	})
}

// RespondWithDomainError maps a service error onto an HTTP status and code.
// Anything unclassified is a 500 with a generic message so internals never
// leak to clients.
func RespondWithDomainError(c *gin.Context, err error, logger *zap.Logger) {
	switch {
	case domainErrors.IsValidation(err):
		RespondWithError(c, http.StatusBadRequest, err.Error(), domainErrors.CodeValidation, logger)
	case domainErrors.IsUnauthorized(err):
		RespondWithError(c, http.StatusUnauthorized, err.Error(), domainErrors.CodeUnauthorized, logger)
	case domainErrors.IsForbidden(err):
		RespondWithError(c, http.StatusForbidden, err.Error(), domainErrors.CodeForbidden, logger)
	case domainErrors.IsNotFound(err):
		RespondWithError(c, http.StatusNotFound, err.Error(), domainErrors.CodeNotFound, logger)
	case domainErrors.IsConflict(err):
		RespondWithError(c, http.StatusConflict, err.Error(), domainErrors.CodeConflict, logger)
	case domainErrors.IsMailDelivery(err):
		RespondWithError(c, http.StatusBadGateway, "failed to deliver email", domainErrors.CodeMailDelivery, logger)
	default:
		logger.Error("unclassified service error", zap.Error(err))
		RespondWithError(c, http.StatusInternalServerError, "internal server error", domainErrors.CodeInternal, logger)
	}
}

// RespondWithData sends a payload without an envelope.
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RespondWithMessage sends a message-only success body.
func RespondWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
