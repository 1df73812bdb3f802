// File: internal/service/stream_service.go
package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/repository"
)

// presignExpiry bounds how long an upload URL stays usable.
const presignExpiry = 15 * time.Minute

// StreamService handles the social resource surface: streams, categories,
// tags, follows, likes and profile images.
type StreamService struct {
	streams repository.StreamRepository
	images  repository.ImageRepository
	media   interfaces.MediaStore
	logger  *zap.Logger
}

func NewStreamService(
	streams repository.StreamRepository,
	images repository.ImageRepository,
	media interfaces.MediaStore,
	logger *zap.Logger,
) *StreamService {
	return &StreamService{
		streams: streams,
		images:  images,
		media:   media,
		logger:  logger.Named("stream_service"),
	}
}

func (s *StreamService) CreateStream(ctx context.Context, userID uuid.UUID, req models.CreateStreamRequest) (*models.Stream, error) {
	stream := &models.Stream{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.streams.CreateStream(ctx, stream); err != nil {
		return nil, err
	}
	if len(req.Tags) > 0 {
		if err := s.streams.SetTags(ctx, stream.ID, req.Tags); err != nil {
			return nil, err
		}
	}
	return stream, nil
}

func (s *StreamService) GetStream(ctx context.Context, id uuid.UUID) (*models.Stream, error) {
	return s.streams.FindStreamByID(ctx, id)
}

func (s *StreamService) ListStreamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Stream, error) {
	return s.streams.ListStreamsByUser(ctx, userID)
}

func (s *StreamService) UpdateStream(ctx context.Context, actorID uuid.UUID, actorRole models.Role, streamID uuid.UUID, req models.UpdateStreamRequest) (*models.Stream, error) {
	stream, err := s.streams.FindStreamByID(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream.UserID != actorID {
		return nil, domainErrors.ErrForbidden
	}

	if req.Title != nil {
		stream.Title = *req.Title
	}
	if req.Description != nil {
		stream.Description = *req.Description
	}
	if req.CategoryID != nil {
		stream.CategoryID = req.CategoryID
	}
	if err := s.streams.UpdateStream(ctx, stream); err != nil {
		return nil, err
	}
	if req.Tags != nil {
		if err := s.streams.SetTags(ctx, stream.ID, req.Tags); err != nil {
			return nil, err
		}
		stream.Tags = req.Tags
	}
	return stream, nil
}

// DeleteStream allows the owner of the stream, or a moderator-or-higher
// actor, to remove it.
func (s *StreamService) DeleteStream(ctx context.Context, actorID uuid.UUID, actorRole models.Role, streamID uuid.UUID) error {
	stream, err := s.streams.FindStreamByID(ctx, streamID)
	if err != nil {
		return err
	}
	moderation := []models.Role{models.RoleOwner, models.RoleAdmin, models.RoleModerator}
	if stream.UserID != actorID && !models.Contains(moderation, actorRole) {
		return domainErrors.ErrForbidden
	}
	return s.streams.DeleteStream(ctx, streamID)
}

func (s *StreamService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{ID: uuid.New(), Name: name}
	if err := s.streams.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *StreamService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.streams.ListCategories(ctx)
}

func (s *StreamService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return fmt.Errorf("%w: cannot follow yourself", domainErrors.ErrInvalidRequest)
	}
	return s.streams.CreateFollow(ctx, followerID, followeeID)
}

func (s *StreamService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return s.streams.DeleteFollow(ctx, followerID, followeeID)
}

func (s *StreamService) Like(ctx context.Context, userID, streamID uuid.UUID) error {
	if _, err := s.streams.FindStreamByID(ctx, streamID); err != nil {
		return err
	}
	return s.streams.CreateLike(ctx, userID, streamID)
}

func (s *StreamService) Unlike(ctx context.Context, userID, streamID uuid.UUID) error {
	return s.streams.DeleteLike(ctx, userID, streamID)
}

func (s *StreamService) CountLikes(ctx context.Context, streamID uuid.UUID) (int64, error) {
	return s.streams.CountLikes(ctx, streamID)
}

// PresignImageUpload hands the client a direct upload URL; the object key
// is namespaced under the uploading user.
func (s *StreamService) PresignImageUpload(ctx context.Context, userID uuid.UUID, req models.PresignUploadRequest) (*models.PresignUploadResponse, error) {
	objectKey := fmt.Sprintf("images/%s/%s%s", userID, uuid.NewString(), path.Ext(req.Filename))
	url, err := s.media.PresignUpload(ctx, objectKey, req.ContentType, presignExpiry)
	if err != nil {
		return nil, err
	}
	return &models.PresignUploadResponse{
		UploadURL: url,
		ObjectKey: objectKey,
		ExpiresIn: int(presignExpiry.Seconds()),
	}, nil
}

// ConfirmImage records an uploaded object against its owner.
func (s *StreamService) ConfirmImage(ctx context.Context, userID uuid.UUID, objectKey string) (*models.Image, error) {
	image := &models.Image{
		ID:        uuid.New(),
		UserID:    userID,
		ObjectKey: objectKey,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.images.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// DeleteImage removes the row and the blob. Only the owner may delete.
func (s *StreamService) DeleteImage(ctx context.Context, actorID uuid.UUID, imageID uuid.UUID) error {
	image, err := s.images.FindByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.UserID != actorID {
		return domainErrors.ErrForbidden
	}
	if err := s.images.Delete(ctx, imageID); err != nil {
		return err
	}
	if err := s.media.DeleteImage(ctx, image.ObjectKey); err != nil {
		// The row is gone; an orphaned blob is cleaned up out of band.
		s.logger.Warn("blob delete failed after row delete",
			zap.String("object_key", image.ObjectKey), zap.Error(err))
	}
	return nil
}
