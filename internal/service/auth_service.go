// File: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/config"
	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/repository"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/events"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/utils/random"
)

// usernameAttempts bounds the retry loop for generated usernames. The
// candidate space is timestamp-based, so collisions beyond the first retry
// are vanishingly rare.
const usernameAttempts = 10

// TxManager runs a function inside a storage transaction with
// rollback-on-error semantics.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuthService orchestrates signup, signin, token refresh, password reset and
// signout over the account directory, the token store and the hashing and
// token services.
type AuthService struct {
	users     repository.UserRepository
	tokens    repository.RefreshTokenRepository
	streams   repository.StreamRepository
	images    repository.ImageRepository
	passwords interfaces.PasswordService
	jwt       interfaces.TokenService
	mail      interfaces.MailSender
	media     interfaces.MediaStore
	publisher interfaces.EventPublisher
	tx        TxManager
	cfg       *config.Config
	logger    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens repository.RefreshTokenRepository,
	streams repository.StreamRepository,
	images repository.ImageRepository,
	passwords interfaces.PasswordService,
	jwt interfaces.TokenService,
	mail interfaces.MailSender,
	media interfaces.MediaStore,
	publisher interfaces.EventPublisher,
	tx TxManager,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		streams:   streams,
		images:    images,
		passwords: passwords,
		jwt:       jwt,
		mail:      mail,
		media:     media,
		publisher: publisher,
		tx:        tx,
		cfg:       cfg,
		logger:    logger.Named("auth_service"),
	}
}

// publish emits an account event best-effort. A failed publish never fails
// the request that triggered it.
func (s *AuthService) publish(ctx context.Context, eventType, subject string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, subject, payload); err != nil {
		s.logger.Warn("event publish failed",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

// Signup registers a new account. No tokens are issued at signup; the
// client signs in afterwards. The first account ever created receives the
// owner role, every later one the user role.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("%w: email and password are required", domainErrors.ErrBlankField)
	}

	timezoneID := req.TimezoneID
	if timezoneID == "" {
		timezoneID = "UTC"
	}
	if _, err := time.LoadLocation(timezoneID); err != nil {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidTimezone, timezoneID)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domainErrors.ErrEmailExists
	} else if !errors.Is(err, domainErrors.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.passwords.Generate(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	username, err := s.generateUsername(ctx)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = models.RoleOwner
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hashed.Hash,
		PasswordSalt: hashed.Salt,
		Role:         role,
		TimezoneID:   timezoneID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)
	s.publish(ctx, events.UserRegisteredV1, user.ID.String(), events.UserRegisteredPayload{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role.String(),
	})

	return user, nil
}

// generateUsername retries timestamp-based candidates against the directory
// until one is unused.
func (s *AuthService) generateUsername(ctx context.Context) (string, error) {
	for i := 0; i < usernameAttempts; i++ {
		candidate, err := random.UsernameCandidate()
		if err != nil {
			return "", err
		}
		_, err = s.users.FindByUsername(ctx, candidate)
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate unique username after %d attempts", usernameAttempts)
}

// Signin verifies credentials and issues a fresh token pair. The user's
// refresh token row is created on first signin and replaced in place on
// every later one, keeping exactly one live session per user.
func (s *AuthService) Signin(ctx context.Context, req models.SigninRequest) (*models.TokenPair, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, nil, err
	}

	ok := s.passwords.Verify(req.Password, interfaces.SaltedHash{
		Hash: user.PasswordHash,
		Salt: user.PasswordSalt,
	})
	if !ok {
		return nil, nil, domainErrors.ErrInvalidCredentials
	}

	pair, refreshToken, err := s.mintTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	expiresAt := time.Now().UTC().Add(s.jwt.RefreshTTL())
	_, err = s.tokens.FindByUserID(ctx, user.ID)
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		err = s.tokens.Create(ctx, &models.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     refreshToken,
			CreatedAt: time.Now().UTC(),
			ExpiresAt: expiresAt,
		})
	case err == nil:
		err = s.tokens.Replace(ctx, user.ID, refreshToken, expiresAt)
	}
	if err != nil {
		return nil, nil, err
	}

	return pair, user, nil
}

// Refresh rotates a presented refresh token. The stored row's expiry is the
// authoritative boundary; a missing or expired row is an authentication
// failure regardless of the JWT's own exp claim.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*models.TokenPair, error) {
	row, err := s.tokens.FindByToken(ctx, presented)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if row.IsExpired(time.Now().UTC()) {
		return nil, domainErrors.ErrInvalidRefreshToken
	}

	// Claims are not carried by the opaque refresh token, so the owner is
	// re-resolved to re-embed role and timezone.
	user, err := s.users.FindByID(ctx, row.UserID)
	if err != nil {
		return nil, err
	}

	pair, refreshToken, err := s.mintTokenPair(user)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(s.jwt.RefreshTTL())
	if err := s.tokens.Replace(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	return pair, nil
}

func (s *AuthService) mintTokenPair(user *models.User) (*models.TokenPair, string, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role, user.TimezoneID)
	if err != nil {
		return nil, "", err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.TimezoneID)
	if err != nil {
		return nil, "", err
	}
	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.jwt.AccessTTL().Seconds()),
	}, refreshToken, nil
}

// ForgotPassword issues a single-use reset token and mails a reset link.
// The response is identical whether or not the email is registered, so the
// endpoint cannot be used to enumerate accounts. A mail failure is reported
// distinctly and does not invalidate the already-persisted token.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			s.logger.Debug("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := random.AlphanumericToken(s.cfg.Security.ResetToken.Length)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	expiresAt := time.Now().UTC().Add(s.cfg.Security.ResetToken.TTL)

	if err := s.users.UpdatePasswordResetToken(ctx, user.ID, &token, &expiresAt); err != nil {
		return err
	}

	body := fmt.Sprintf(
		`<p>A password reset was requested for your account.</p>
<p><a href="%s?token=%s">Reset your password</a></p>
<p>The link expires in %s. If you did not request this, ignore this email.</p>`,
		s.cfg.Mail.ResetURL, token, s.cfg.Security.ResetToken.TTL,
	)
	if err := s.mail.Send(ctx, user.Email, "Password reset", body); err != nil {
		// The token stays valid: the user may retry and the next mail can
		// succeed. Reported as a mail error, not swallowed.
		s.logger.Error("reset mail failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return err
	}

	return nil
}

// ResetPassword consumes a reset token, stores the new credential material
// and revokes every session for the user.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("%w: new password is required", domainErrors.ErrBlankField)
	}

	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return domainErrors.ErrResetTokenInvalid
		}
		return err
	}
	if user.PasswordResetExpiresAt == nil || !time.Now().UTC().Before(*user.PasswordResetExpiresAt) {
		return domainErrors.ErrResetTokenInvalid
	}

	hashed, err := s.passwords.Generate(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// UpdatePassword also nulls the reset token, consuming it.
	if err := s.users.UpdatePassword(ctx, user.ID, hashed.Hash, hashed.Salt); err != nil {
		return err
	}
	if _, err := s.tokens.DeleteByUserID(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info("password reset completed", zap.String("user_id", user.ID.String()))
	s.publish(ctx, events.UserPasswordResetV1, user.ID.String(), events.UserPasswordResetPayload{
		UserID: user.ID.String(),
	})

	return nil
}

// Signout revokes the user's session. Signing out an already signed-out
// user is not an error as long as the user exists.
func (s *AuthService) Signout(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	_, err := s.tokens.DeleteByUserID(ctx, userID)
	return err
}

// DeleteAccount removes the credential, its sessions and all owned content
// in one transaction: a failure at any step rolls the whole deletion back.
// Media blobs are removed inside the transaction scope so a blob-store
// failure also aborts the row deletions.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.tokens.DeleteByUserID(txCtx, userID); err != nil {
			return err
		}
		if err := s.streams.DeleteFollowsForUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.streams.DeleteStreamsByUser(txCtx, userID); err != nil {
			return err
		}

		images, err := s.images.ListByUser(txCtx, userID)
		if err != nil {
			return err
		}
		for _, img := range images {
			if err := s.media.DeleteImage(txCtx, img.ObjectKey); err != nil {
				return err
			}
		}
		if err := s.images.DeleteByUser(txCtx, userID); err != nil {
			return err
		}

		return s.users.Delete(txCtx, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("account deleted", zap.String("user_id", userID.String()))
	s.publish(ctx, events.UserDeletedV1, userID.String(), events.UserDeletedPayload{
		UserID: userID.String(),
	})

	return nil
}
