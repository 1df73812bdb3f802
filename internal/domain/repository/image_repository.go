// File: internal/domain/repository/image_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

// ImageRepository tracks uploaded media objects per owner.
type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
