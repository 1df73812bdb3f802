// File: internal/domain/models/stream.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Stream is a user-owned content stream.
type Stream struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty" db:"category_id"`
	ImageURL    *string    `json:"image_url,omitempty" db:"image_url"`
	Tags        []string   `json:"tags,omitempty" db:"-"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// Category groups streams.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// Follow links a follower to a followee account.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id" db:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id" db:"followee_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Like marks a user's like on a stream.
type Like struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	StreamID  uuid.UUID `json:"stream_id" db:"stream_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateStreamRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Tags        []string   `json:"tags"`
}

type UpdateStreamRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Tags        []string   `json:"tags"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
