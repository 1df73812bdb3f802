// File: internal/handler/http/stream_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/handler/http/middleware"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/service"
)

// StreamHandler exposes streams, categories, follows, likes and images.
type StreamHandler struct {
	logger  *zap.Logger
	streams *service.StreamService
}

func NewStreamHandler(logger *zap.Logger, streams *service.StreamService) *StreamHandler {
	return &StreamHandler{
		logger:  logger.Named("stream_handler"),
		streams: streams,
	}
}

func (h *StreamHandler) claims(c *gin.Context) (*interfaces.AccessClaims, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", domainErrors.CodeUnauthorized, h.logger)
	}
	return claims, ok
}

// CreateStream creates a stream owned by the caller.
// POST /streams
func (h *StreamHandler) CreateStream(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}

	var req models.CreateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	stream, err := h.streams.CreateStream(c.Request.Context(), claims.UserID, req)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, stream)
}

// GetStream fetches one stream by id.
// GET /streams/:id
func (h *StreamHandler) GetStream(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid stream id", domainErrors.CodeValidation, h.logger)
		return
	}

	stream, err := h.streams.GetStream(c.Request.Context(), id)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, stream)
}

// ListUserStreams lists the streams a user owns.
// GET /users/:id/streams
func (h *StreamHandler) ListUserStreams(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid user id", domainErrors.CodeValidation, h.logger)
		return
	}

	streams, err := h.streams.ListStreamsByUser(c.Request.Context(), userID)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, gin.H{"streams": streams})
}

// UpdateStream edits a stream the caller owns.
// PATCH /streams/:id
func (h *StreamHandler) UpdateStream(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid stream id", domainErrors.CodeValidation, h.logger)
		return
	}

	var req models.UpdateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	stream, err := h.streams.UpdateStream(c.Request.Context(), claims.UserID, claims.Role, id, req)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, stream)
}

// DeleteStream removes a stream. Owners always may; moderators and above
// may remove anyone's.
// DELETE /streams/:id
func (h *StreamHandler) DeleteStream(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid stream id", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.streams.DeleteStream(c.Request.Context(), claims.UserID, claims.Role, id); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithMessage(c, http.StatusOK, "stream deleted")
}

// CreateCategory adds a category. The route is gated on admin-or-higher.
// POST /categories
func (h *StreamHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	category, err := h.streams.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, category)
}

// ListCategories lists all categories.
// GET /categories
func (h *StreamHandler) ListCategories(c *gin.Context) {
	categories, err := h.streams.ListCategories(c.Request.Context())
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, gin.H{"categories": categories})
}

// Follow makes the caller follow another user.
// POST /users/:id/follow
func (h *StreamHandler) Follow(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid user id", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.streams.Follow(c.Request.Context(), claims.UserID, followeeID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithMessage(c, http.StatusCreated, "following")
}

// Unfollow removes a follow edge.
// DELETE /users/:id/follow
func (h *StreamHandler) Unfollow(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid user id", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.streams.Unfollow(c.Request.Context(), claims.UserID, followeeID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithMessage(c, http.StatusOK, "unfollowed")
}

// Like marks the caller's like on a stream.
// POST /streams/:id/like
func (h *StreamHandler) Like(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	streamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid stream id", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.streams.Like(c.Request.Context(), claims.UserID, streamID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithMessage(c, http.StatusCreated, "liked")
}

// Unlike removes the caller's like from a stream.
// DELETE /streams/:id/like
func (h *StreamHandler) Unlike(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	streamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid stream id", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.streams.Unlike(c.Request.Context(), claims.UserID, streamID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithMessage(c, http.StatusOK, "unliked")
}

// CountLikes returns the like count for a stream.
// GET /streams/:id/likes
func (h *StreamHandler) CountLikes(c *gin.Context) {
	streamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid stream id", domainErrors.CodeValidation, h.logger)
		return
	}

	count, err := h.streams.CountLikes(c.Request.Context(), streamID)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, gin.H{"likes": count})
}

// PresignImageUpload issues a direct upload URL for the caller.
// POST /images/presign
func (h *StreamHandler) PresignImageUpload(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}

	var req models.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	resp, err := h.streams.PresignImageUpload(c.Request.Context(), claims.UserID, req)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, resp)
}

// ConfirmImage records a completed upload against the caller.
// POST /images
func (h *StreamHandler) ConfirmImage(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}

	var req models.ConfirmImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	image, err := h.streams.ConfirmImage(c.Request.Context(), claims.UserID, req.ObjectKey)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, image)
}

// DeleteImage removes an image the caller owns.
// DELETE /images/:id
func (h *StreamHandler) DeleteImage(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid image id", domainErrors.CodeValidation, h.logger)
		return
	}

	if err := h.streams.DeleteImage(c.Request.Context(), claims.UserID, imageID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}
	RespondWithMessage(c, http.StatusOK, "image deleted")
}
