// File: internal/domain/repository/postgres/user_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/repository"
)

const userColumns = `id, email, username, password_hash, password_salt, role,
	password_reset_token, password_reset_expires_at, timezone_id, created_at`

// UserRepositoryPostgres implements repository.UserRepository over pgx.
type UserRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewUserRepositoryPostgres(pool *pgxpool.Pool) *UserRepositoryPostgres {
	return &UserRepositoryPostgres{pool: pool}
}

func (r *UserRepositoryPostgres) scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.PasswordSalt, &u.Role,
		&u.PasswordResetToken, &u.PasswordResetExpiresAt, &u.TimezoneID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, domainErrors.NewStorageError("scan user", err)
	}
	return u, nil
}

func (r *UserRepositoryPostgres) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return r.scanUser(querier(ctx, r.pool).QueryRow(ctx, query, email))
}

func (r *UserRepositoryPostgres) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)
	return r.scanUser(querier(ctx, r.pool).QueryRow(ctx, query, username))
}

func (r *UserRepositoryPostgres) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return r.scanUser(querier(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *UserRepositoryPostgres) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE password_reset_token = $1`, userColumns)
	return r.scanUser(querier(ctx, r.pool).QueryRow(ctx, query, token))
}

// Create inserts a new credential row, mapping unique violations on email
// and username to their domain conflicts.
func (r *UserRepositoryPostgres) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, password_salt, role, timezone_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := querier(ctx, r.pool).Exec(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash, user.PasswordSalt,
		user.Role, user.TimezoneID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if strings.Contains(pgErr.ConstraintName, "email") {
				return domainErrors.ErrEmailExists
			}
			return domainErrors.ErrUsernameExists
		}
		return domainErrors.NewStorageError("create user", err)
	}
	return nil
}

func (r *UserRepositoryPostgres) UpdatePasswordResetToken(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error {
	query := `
		UPDATE users
		SET password_reset_token = $1, password_reset_expires_at = $2
		WHERE id = $3
	`
	result, err := querier(ctx, r.pool).Exec(ctx, query, token, expiresAt, userID)
	if err != nil {
		return domainErrors.NewStorageError("update password reset token", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

// UpdatePassword stores the new hash/salt and consumes any outstanding reset
// token in the same statement.
func (r *UserRepositoryPostgres) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash, passwordSalt string) error {
	query := `
		UPDATE users
		SET password_hash = $1, password_salt = $2,
		    password_reset_token = NULL, password_reset_expires_at = NULL
		WHERE id = $3
	`
	result, err := querier(ctx, r.pool).Exec(ctx, query, passwordHash, passwordSalt, userID)
	if err != nil {
		return domainErrors.NewStorageError("update password", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryPostgres) Delete(ctx context.Context, userID uuid.UUID) error {
	result, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return domainErrors.NewStorageError("delete user", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryPostgres) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := querier(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, domainErrors.NewStorageError("count users", err)
	}
	return n, nil
}

var _ repository.UserRepository = (*UserRepositoryPostgres)(nil)
