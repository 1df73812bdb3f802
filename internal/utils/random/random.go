// File: internal/utils/random/random.go
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// AlphanumericToken draws length characters from a cryptographically secure
// source. Used for password reset tokens; length must be at least 32.
func AlphanumericToken(length int) (string, error) {
	if length < 32 {
		return "", fmt.Errorf("token length %d below minimum of 32", length)
	}
	out := make([]byte, length)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to draw random index: %w", err)
		}
		out[i] = alphanumeric[n.Int64()]
	}
	return string(out), nil
}

// UsernameCandidate produces a username of the form user_<digits>_<digits>
// from the current timestamp plus a random suffix. Callers retry against
// the account directory until the candidate is unused.
func UsernameCandidate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to draw random suffix: %w", err)
	}
	return fmt.Sprintf("user_%d_%d", time.Now().UnixMilli(), n.Int64()), nil
}
