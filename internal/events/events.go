// File: internal/events/events.go
package events

// Account lifecycle event types published to the account events topic.
const (
	UserRegisteredV1    = "auth.user.registered.v1"
	UserDeletedV1       = "auth.user.deleted.v1"
	UserPasswordResetV1 = "auth.user.password_reset.v1"
)

// UserRegisteredPayload is emitted after a successful signup.
type UserRegisteredPayload struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserDeletedPayload is emitted after an account deletion commits.
type UserDeletedPayload struct {
	UserID string `json:"user_id"`
}

// UserPasswordResetPayload is emitted after a successful password reset.
// Every session for the user has been revoked by the time it is published.
type UserPasswordResetPayload struct {
	UserID string `json:"user_id"`
}
