// File: internal/domain/models/refresh_token.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents the single live session row for a user.
// user_id carries a UNIQUE constraint: a second signin replaces the row
// in place rather than inserting a sibling.
type RefreshToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Token     string    `json:"-" db:"token"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// IsExpired checks the store-side expiry, which is the authoritative
// session boundary regardless of the JWT's own exp claim.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
