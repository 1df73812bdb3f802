// File: internal/domain/repository/user_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

// UserRepository is the account directory: it persists identity, credential
// material, role and profile fields. Lookups return ErrUserNotFound on no
// rows; Create maps unique violations to ErrEmailExists/ErrUsernameExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error

	// UpdatePasswordResetToken sets or clears the single-use reset token
	// and its expiry. Passing nils invalidates any outstanding token.
	UpdatePasswordResetToken(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error

	// UpdatePassword replaces hash and salt and clears the reset token in
	// the same statement, consuming it.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash, passwordSalt string) error

	Delete(ctx context.Context, userID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
