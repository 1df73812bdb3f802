// File: internal/domain/repository/postgres/refresh_token_repository.go
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/repository"
)

// RefreshTokenRepositoryPostgres implements repository.RefreshTokenRepository.
// The refresh_tokens table carries a UNIQUE constraint on user_id, which
// backs the one-live-session-per-user invariant.
type RefreshTokenRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewRefreshTokenRepositoryPostgres(pool *pgxpool.Pool) *RefreshTokenRepositoryPostgres {
	return &RefreshTokenRepositoryPostgres{pool: pool}
}

func (r *RefreshTokenRepositoryPostgres) scanToken(row pgx.Row) (*models.RefreshToken, error) {
	t := &models.RefreshToken{}
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, domainErrors.NewStorageError("scan refresh token", err)
	}
	return t, nil
}

func (r *RefreshTokenRepositoryPostgres) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, created_at, expires_at
		FROM refresh_tokens
		WHERE user_id = $1
	`
	return r.scanToken(querier(ctx, r.pool).QueryRow(ctx, query, userID))
}

func (r *RefreshTokenRepositoryPostgres) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, created_at, expires_at
		FROM refresh_tokens
		WHERE token = $1
	`
	return r.scanToken(querier(ctx, r.pool).QueryRow(ctx, query, token))
}

func (r *RefreshTokenRepositoryPostgres) Create(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := querier(ctx, r.pool).Exec(ctx, query,
		token.ID, token.UserID, token.Token, token.CreatedAt, token.ExpiresAt,
	)
	if err != nil {
		return domainErrors.NewStorageError("create refresh token", err)
	}
	return nil
}

// Replace rotates the user's session in a single UPDATE so there is no
// window with zero valid sessions between revoking the old value and
// storing the new one.
func (r *RefreshTokenRepositoryPostgres) Replace(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET token = $1, created_at = NOW(), expires_at = $2
		WHERE user_id = $3
	`
	result, err := querier(ctx, r.pool).Exec(ctx, query, token, expiresAt, userID)
	if err != nil {
		return domainErrors.NewStorageError("replace refresh token", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *RefreshTokenRepositoryPostgres) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return 0, domainErrors.NewStorageError("delete refresh tokens by user", err)
	}
	return result.RowsAffected(), nil
}

var _ repository.RefreshTokenRepository = (*RefreshTokenRepositoryPostgres)(nil)
