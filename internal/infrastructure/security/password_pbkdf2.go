// File: internal/infrastructure/security/password_pbkdf2.go
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
)

// PBKDF2Params holds the key derivation parameters. Populated from
// application configuration.
type PBKDF2Params struct {
	Iterations int
	SaltLength int
	KeyLength  int
}

// pbkdf2PasswordService implements interfaces.PasswordService using
// PBKDF2 with HMAC-SHA256.
type pbkdf2PasswordService struct {
	params PBKDF2Params
}

// NewPBKDF2PasswordService creates a PasswordService. Iterations below
// 65536 are rejected: the derivation must stay slow enough to resist
// offline guessing.
func NewPBKDF2PasswordService(params PBKDF2Params) (interfaces.PasswordService, error) {
	if params.Iterations < 65536 {
		return nil, fmt.Errorf("pbkdf2 iterations too low: %d", params.Iterations)
	}
	if params.SaltLength <= 0 || params.KeyLength <= 0 {
		return nil, errors.New("PBKDF2Params must be fully configured")
	}
	return &pbkdf2PasswordService{params: params}, nil
}

// Generate draws a fresh cryptographically random salt and derives the key.
func (s *pbkdf2PasswordService) Generate(password string) (interfaces.SaltedHash, error) {
	salt := make([]byte, s.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return interfaces.SaltedHash{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, s.params.Iterations, s.params.KeyLength, sha256.New)

	return interfaces.SaltedHash{
		Hash: base64.StdEncoding.EncodeToString(key),
		Salt: base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// Verify re-derives with the stored salt and compares in constant time.
// Malformed stored values fail closed.
func (s *pbkdf2PasswordService) Verify(password string, h interfaces.SaltedHash) bool {
	salt, err := base64.StdEncoding.DecodeString(h.Salt)
	if err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(h.Hash)
	if err != nil || len(stored) == 0 {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, s.params.Iterations, len(stored), sha256.New)
	return subtle.ConstantTimeCompare(stored, derived) == 1
}

var _ interfaces.PasswordService = (*pbkdf2PasswordService)(nil)
