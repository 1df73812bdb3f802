// File: internal/infrastructure/security/jwt_service_test.go
package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Issuer:     "auth-service",
		Audience:   "auth-service-clients",
		AccessTTL:  time.Hour,
		RefreshTTL: 168 * time.Hour,
		Secret:     "test-secret-not-for-production",
	}
}

func TestNewJWTService_RejectsEmptySecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestNewJWTService_RejectsNonPositiveTTL(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTTL = 0
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestAccessToken_RoundTripCarriesIdentityAndRole(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID, models.RoleModerator, "UTC")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, models.RoleModerator, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestGenerateAccessToken_InvalidTimezone(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = svc.GenerateAccessToken(uuid.New(), models.RoleUser, "Mars/Olympus")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidTimezone)
}

func TestGenerateAccessToken_NonUTCTimezone(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New(), models.RoleUser, "Europe/Bucharest")
	require.NoError(t, err)

	// The zone affects derivation only; the instant is the same.
	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "a-different-secret-entirely"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.GenerateAccessToken(uuid.New(), models.RoleUser, "UTC")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestValidateAccessToken_WrongAudience(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	other := testJWTConfig()
	other.Audience = "somebody-else"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.GenerateAccessToken(uuid.New(), models.RoleUser, "UTC")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTTL = time.Nanosecond
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New(), models.RoleUser, "UTC")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrExpiredToken)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestRefreshToken_IsSignedAndDistinct(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	t1, err := svc.GenerateRefreshToken("UTC")
	require.NoError(t, err)
	t2, err := svc.GenerateRefreshToken("UTC")
	require.NoError(t, err)

	assert.NotEmpty(t, t1)
	assert.NotEqual(t, t1, t2)
}
