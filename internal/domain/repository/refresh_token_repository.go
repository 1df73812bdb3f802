// File: internal/domain/repository/refresh_token_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

// RefreshTokenRepository is the token store: at most one live refresh token
// row per user. The token string is treated as an opaque lookup value.
type RefreshTokenRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.RefreshToken, error)
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Create(ctx context.Context, token *models.RefreshToken) error

	// Replace overwrites the value and expiry of the user's existing row in
	// a single UPDATE, so rotation never passes through a zero-session
	// state. Returns ErrNotFound when the user has no row.
	Replace(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error

	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
