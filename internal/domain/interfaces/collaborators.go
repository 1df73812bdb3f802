// File: internal/domain/interfaces/collaborators.go
package interfaces

import (
	"context"
	"time"
)

// MailSender dispatches transactional email. Implementations pick provider
// settings by recipient domain. Failures are reported as a distinct error
// class from storage failures.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// MediaStore abstracts the blob store holding profile and stream images.
type MediaStore interface {
	DeleteImage(ctx context.Context, objectKey string) error
	PresignUpload(ctx context.Context, objectKey, contentType string, expiry time.Duration) (string, error)
}

// EventPublisher emits account lifecycle events for downstream consumers.
// Publishing is best-effort from the caller's perspective; a failed publish
// never rolls back committed state.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, subject string, payload any) error
}

// RateLimiter gates a keyed action against a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
