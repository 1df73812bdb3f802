// File: internal/infrastructure/security/jwt_service.go
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
)

// JWTConfig holds the token signing configuration, fixed at construction.
type JWTConfig struct {
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Secret     string
}

// accessTokenClaims is the wire shape of access token claims.
type accessTokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type jwtService struct {
	config JWTConfig
	secret []byte
}

// NewJWTService creates a TokenService signing with HMAC-SHA256. The secret
// must come from the environment or a secret store; an empty secret is a
// construction error, never a silent fallback.
func NewJWTService(cfg JWTConfig) (interfaces.TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt signing secret is not configured")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("jwt token TTLs must be positive")
	}
	return &jwtService{config: cfg, secret: []byte(cfg.Secret)}, nil
}

// nowIn resolves the current instant in the credential's timezone. The
// instant is the same either way; the zone matters only for how iat/exp are
// derived, mirroring the per-account timezone field.
func (s *jwtService) nowIn(timezoneID string) (time.Time, error) {
	if timezoneID == "" {
		return time.Now().UTC(), nil
	}
	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidTimezone, timezoneID)
	}
	return time.Now().In(loc), nil
}

func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role models.Role, timezoneID string) (string, error) {
	now, err := s.nowIn(timezoneID)
	if err != nil {
		return "", err
	}

	claims := &accessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.config.Issuer,
			Audience:  jwt.ClaimStrings{s.config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTTL)),
			ID:        uuid.NewString(),
		},
		UserID: userID.String(),
		Role:   role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) GenerateRefreshToken(timezoneID string) (string, error) {
	now, err := s.nowIn(timezoneID)
	if err != nil {
		return "", err
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    s.config.Issuer,
		Audience:  jwt.ClaimStrings{s.config.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.RefreshTTL)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*interfaces.AccessClaims, error) {
	claims := &accessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainErrors.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, domainErrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user_id claim", domainErrors.ErrInvalidToken)
	}
	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed role claim", domainErrors.ErrInvalidToken)
	}

	return &interfaces.AccessClaims{
		UserID:    userID,
		Role:      role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *jwtService) AccessTTL() time.Duration  { return s.config.AccessTTL }
func (s *jwtService) RefreshTTL() time.Duration { return s.config.RefreshTTL }

var _ interfaces.TokenService = (*jwtService)(nil)
