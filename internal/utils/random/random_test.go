// File: internal/utils/random/random_test.go
package random

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphanumericToken_RejectsShortLength(t *testing.T) {
	_, err := AlphanumericToken(16)
	assert.Error(t, err)
}

func TestAlphanumericToken_LengthAndAlphabet(t *testing.T) {
	token, err := AlphanumericToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 32)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]+$`), token)
}

func TestAlphanumericToken_Distinct(t *testing.T) {
	t1, err := AlphanumericToken(32)
	require.NoError(t, err)
	t2, err := AlphanumericToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestUsernameCandidate_Shape(t *testing.T) {
	candidate, err := UsernameCandidate()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^user_\d+_\d+$`), candidate)
}
