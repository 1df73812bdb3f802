// File: internal/domain/repository/stream_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

// StreamRepository persists streams, their categories and tags, plus the
// follow and like edges.
type StreamRepository interface {
	CreateStream(ctx context.Context, stream *models.Stream) error
	FindStreamByID(ctx context.Context, id uuid.UUID) (*models.Stream, error)
	ListStreamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Stream, error)
	UpdateStream(ctx context.Context, stream *models.Stream) error
	DeleteStream(ctx context.Context, id uuid.UUID) error
	DeleteStreamsByUser(ctx context.Context, userID uuid.UUID) error

	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)

	SetTags(ctx context.Context, streamID uuid.UUID, tags []string) error
	ListTags(ctx context.Context, streamID uuid.UUID) ([]string, error)

	CreateFollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	DeleteFollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	DeleteFollowsForUser(ctx context.Context, userID uuid.UUID) error

	CreateLike(ctx context.Context, userID, streamID uuid.UUID) error
	DeleteLike(ctx context.Context, userID, streamID uuid.UUID) error
	CountLikes(ctx context.Context, streamID uuid.UUID) (int64, error)
}
