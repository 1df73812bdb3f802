// File: internal/domain/interfaces/password_service.go
package interfaces

// SaltedHash is a password-derived key plus the per-credential salt it was
// derived with, both base64 encoded.
type SaltedHash struct {
	Hash string
	Salt string
}

// PasswordService derives and verifies salted password hashes.
type PasswordService interface {
	// Generate draws a fresh random salt and derives a fixed-length key
	// from the password. CPU-bound; no other side effects.
	Generate(password string) (SaltedHash, error)

	// Verify re-derives the hash with the stored salt and compares in
	// constant time. Returns false, never an error, for a wrong password.
	Verify(password string, h SaltedHash) bool
}
