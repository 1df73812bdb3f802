// File: internal/domain/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the credential record in the users table.
// PasswordHash and PasswordSalt are base64 encoded and never serialized.
type User struct {
	ID                     uuid.UUID  `json:"id" db:"id"`
	Email                  string     `json:"email" db:"email"`
	Username               string     `json:"username" db:"username"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	PasswordSalt           string     `json:"-" db:"password_salt"`
	Role                   Role       `json:"role" db:"role"`
	PasswordResetToken     *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt *time.Time `json:"-" db:"password_reset_expires_at"`
	TimezoneID             string     `json:"timezone_id" db:"timezone_id"`
	CreatedAt              time.Time  `json:"created_at" db:"created_at"`
}

// UserResponse is the user shape returned by API endpoints. Hash, salt and
// reset token fields are structurally absent, not just tagged away.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Role       Role      `json:"role"`
	TimezoneID string    `json:"timezone_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse strips credential material from the record.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		Role:       u.Role,
		TimezoneID: u.TimezoneID,
		CreatedAt:  u.CreatedAt,
	}
}

// SignupRequest is the payload for POST /signup.
type SignupRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	TimezoneID string `json:"timezone_id"`
}

// SigninRequest is the payload for POST /signin.
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest is the payload for POST /forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the payload for POST /reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// SignoutRequest is the payload for POST /signout.
type SignoutRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}
