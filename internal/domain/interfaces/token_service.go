// File: internal/domain/interfaces/token_service.go
package interfaces

import (
	"time"

	"github.com/google/uuid"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

// AccessClaims is the verified claim set extracted from an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Role      models.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService mints and verifies signed, time-bounded tokens. Issuer,
// audience, TTLs and the signing secret are fixed at construction.
type TokenService interface {
	// GenerateAccessToken mints a short-lived token embedding the user id
	// and role, with iat/exp evaluated in the given timezone. An invalid
	// timezone identifier is a validation error.
	GenerateAccessToken(userID uuid.UUID, role models.Role, timezoneID string) (string, error)

	// GenerateRefreshToken mints a token with registered claims only. The
	// token store's expiry remains the authoritative session boundary; the
	// token's own exp is never shorter than the store's.
	GenerateRefreshToken(timezoneID string) (string, error)

	// ValidateAccessToken verifies signature, issuer, audience and expiry
	// and returns the carried claims. All failures are fail-closed.
	ValidateAccessToken(token string) (*AccessClaims, error)

	// AccessTTL and RefreshTTL expose the configured lifetimes.
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
