// File: internal/domain/models/image.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Image tracks an uploaded object owned by a user. The blob itself lives in
// the media store; the row carries only the object key.
type Image struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ObjectKey string    `json:"object_key" db:"object_key"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ConfirmImageRequest struct {
	ObjectKey string `json:"object_key" binding:"required"`
}

type PresignUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type PresignUploadResponse struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int    `json:"expires_in"`
}
