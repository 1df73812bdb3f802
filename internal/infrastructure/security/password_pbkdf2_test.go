// File: internal/infrastructure/security/password_pbkdf2_test.go
package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
)

func testParams() PBKDF2Params {
	return PBKDF2Params{Iterations: 65536, SaltLength: 32, KeyLength: 32}
}

func TestNewPBKDF2PasswordService_RejectsLowIterations(t *testing.T) {
	_, err := NewPBKDF2PasswordService(PBKDF2Params{Iterations: 1000, SaltLength: 32, KeyLength: 32})
	assert.Error(t, err)
}

func TestNewPBKDF2PasswordService_RejectsZeroLengths(t *testing.T) {
	_, err := NewPBKDF2PasswordService(PBKDF2Params{Iterations: 65536})
	assert.Error(t, err)
}

func TestGenerateVerify_RoundTrip(t *testing.T) {
	svc, err := NewPBKDF2PasswordService(testParams())
	require.NoError(t, err)

	h, err := svc.Generate("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, h.Hash)
	assert.NotEmpty(t, h.Salt)

	assert.True(t, svc.Verify("correct horse battery staple", h))
	assert.False(t, svc.Verify("correct horse battery stable", h))
	assert.False(t, svc.Verify("", h))
}

func TestGenerate_SaltVariesPerCall(t *testing.T) {
	svc, err := NewPBKDF2PasswordService(testParams())
	require.NoError(t, err)

	h1, err := svc.Generate("same password")
	require.NoError(t, err)
	h2, err := svc.Generate("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1.Salt, h2.Salt)
	assert.NotEqual(t, h1.Hash, h2.Hash)
}

func TestVerify_MalformedStoredValuesFailClosed(t *testing.T) {
	svc, err := NewPBKDF2PasswordService(testParams())
	require.NoError(t, err)

	assert.False(t, svc.Verify("pw", interfaces.SaltedHash{Hash: "not base64!!", Salt: "also not"}))
	assert.False(t, svc.Verify("pw", interfaces.SaltedHash{Hash: "", Salt: ""}))
}
