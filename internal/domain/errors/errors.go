// File: internal/domain/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

var (
	// Generic errors
	ErrInternal       = errors.New("internal server error")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("resource not found")
	ErrAlreadyExists  = errors.New("resource already exists")
	ErrForbidden      = errors.New("access forbidden")
	ErrUnauthorized   = errors.New("unauthorized")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrResetTokenInvalid   = errors.New("invalid or expired password reset token")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already in use")
	ErrUsernameExists = errors.New("username already in use")

	// Authorization errors
	ErrInsufficientRole = errors.New("insufficient role")
	ErrUnknownRole      = errors.New("unknown role")

	// Validation errors
	ErrBlankField      = errors.New("required field is blank")
	ErrInvalidTimezone = errors.New("invalid timezone identifier")

	// Collaborator errors
	ErrMailDelivery = errors.New("mail delivery failed")

	// Resource errors
	ErrStreamNotFound   = errors.New("stream not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrImageNotFound    = errors.New("image not found")
)

// Error codes returned in API responses.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeMailDelivery = "MAIL_DELIVERY_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// StorageError wraps a persistence layer failure. It is never retried within
// the same request and maps to a 5xx response.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err with the failed repository operation name.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is a "not found" class error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrStreamNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrImageNotFound)
}

// IsConflict reports whether err is a uniqueness/duplication conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrEmailExists) ||
		errors.Is(err, ErrUsernameExists) ||
		errors.Is(err, ErrCategoryExists)
}

// IsUnauthorized reports whether err means the caller is not authenticated.
// All token and credential verification failures fail closed into this class.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInvalidRefreshToken)
}

// IsForbidden reports whether err is a role/permission rejection.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInsufficientRole) ||
		errors.Is(err, ErrUnknownRole)
}

// IsValidation reports whether err is malformed or blank input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrBlankField) ||
		errors.Is(err, ErrInvalidTimezone) ||
		errors.Is(err, ErrResetTokenInvalid)
}

// IsMailDelivery reports whether err came from the mail collaborator.
// Mail failures are reported distinctly from storage failures and do not
// undo state already persisted before the send was attempted.
func IsMailDelivery(err error) bool {
	return errors.Is(err, ErrMailDelivery)
}

// IsStorage reports whether err originated in the persistence layer.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
