// File: internal/domain/repository/postgres/stream_repository.go
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/repository"
)

// StreamRepositoryPostgres implements repository.StreamRepository.
type StreamRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewStreamRepositoryPostgres(pool *pgxpool.Pool) *StreamRepositoryPostgres {
	return &StreamRepositoryPostgres{pool: pool}
}

func (r *StreamRepositoryPostgres) CreateStream(ctx context.Context, stream *models.Stream) error {
	query := `
		INSERT INTO streams (id, user_id, title, description, category_id, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := querier(ctx, r.pool).Exec(ctx, query,
		stream.ID, stream.UserID, stream.Title, stream.Description,
		stream.CategoryID, stream.ImageURL, stream.CreatedAt,
	)
	if err != nil {
		return domainErrors.NewStorageError("create stream", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) FindStreamByID(ctx context.Context, id uuid.UUID) (*models.Stream, error) {
	query := `
		SELECT id, user_id, title, description, category_id, image_url, created_at
		FROM streams
		WHERE id = $1
	`
	s := &models.Stream{}
	err := querier(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Title, &s.Description, &s.CategoryID, &s.ImageURL, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrStreamNotFound
		}
		return nil, domainErrors.NewStorageError("find stream", err)
	}
	tags, err := r.ListTags(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Tags = tags
	return s, nil
}

func (r *StreamRepositoryPostgres) ListStreamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Stream, error) {
	query := `
		SELECT id, user_id, title, description, category_id, image_url, created_at
		FROM streams
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := querier(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, domainErrors.NewStorageError("list streams", err)
	}
	defer rows.Close()

	var streams []models.Stream
	for rows.Next() {
		var s models.Stream
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Description, &s.CategoryID, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, domainErrors.NewStorageError("scan stream", err)
		}
		streams = append(streams, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewStorageError("list streams", err)
	}
	return streams, nil
}

func (r *StreamRepositoryPostgres) UpdateStream(ctx context.Context, stream *models.Stream) error {
	query := `
		UPDATE streams
		SET title = $1, description = $2, category_id = $3, image_url = $4
		WHERE id = $5
	`
	result, err := querier(ctx, r.pool).Exec(ctx, query,
		stream.Title, stream.Description, stream.CategoryID, stream.ImageURL, stream.ID,
	)
	if err != nil {
		return domainErrors.NewStorageError("update stream", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrStreamNotFound
	}
	return nil
}

func (r *StreamRepositoryPostgres) DeleteStream(ctx context.Context, id uuid.UUID) error {
	result, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM streams WHERE id = $1`, id)
	if err != nil {
		return domainErrors.NewStorageError("delete stream", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrStreamNotFound
	}
	return nil
}

func (r *StreamRepositoryPostgres) DeleteStreamsByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM streams WHERE user_id = $1`, userID)
	if err != nil {
		return domainErrors.NewStorageError("delete streams by user", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) CreateCategory(ctx context.Context, category *models.Category) error {
	_, err := querier(ctx, r.pool).Exec(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2)`, category.ID, category.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrCategoryExists
		}
		return domainErrors.NewStorageError("create category", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, domainErrors.NewStorageError("list categories", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, domainErrors.NewStorageError("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewStorageError("list categories", err)
	}
	return categories, nil
}

// SetTags replaces the stream's tag set.
func (r *StreamRepositoryPostgres) SetTags(ctx context.Context, streamID uuid.UUID, tags []string) error {
	q := querier(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM stream_tags WHERE stream_id = $1`, streamID); err != nil {
		return domainErrors.NewStorageError("clear stream tags", err)
	}
	for _, tag := range tags {
		if _, err := q.Exec(ctx,
			`INSERT INTO stream_tags (stream_id, tag) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			streamID, tag); err != nil {
			return domainErrors.NewStorageError("insert stream tag", err)
		}
	}
	return nil
}

func (r *StreamRepositoryPostgres) ListTags(ctx context.Context, streamID uuid.UUID) ([]string, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT tag FROM stream_tags WHERE stream_id = $1 ORDER BY tag`, streamID)
	if err != nil {
		return nil, domainErrors.NewStorageError("list stream tags", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, domainErrors.NewStorageError("scan stream tag", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewStorageError("list stream tags", err)
	}
	return tags, nil
}

func (r *StreamRepositoryPostgres) CreateFollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	_, err := querier(ctx, r.pool).Exec(ctx,
		`INSERT INTO follows (follower_id, followee_id, created_at) VALUES ($1, $2, NOW())
		 ON CONFLICT DO NOTHING`,
		followerID, followeeID)
	if err != nil {
		return domainErrors.NewStorageError("create follow", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) DeleteFollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	_, err := querier(ctx, r.pool).Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID)
	if err != nil {
		return domainErrors.NewStorageError("delete follow", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) DeleteFollowsForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := querier(ctx, r.pool).Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 OR followee_id = $1`, userID)
	if err != nil {
		return domainErrors.NewStorageError("delete follows for user", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) CreateLike(ctx context.Context, userID, streamID uuid.UUID) error {
	_, err := querier(ctx, r.pool).Exec(ctx,
		`INSERT INTO likes (user_id, stream_id, created_at) VALUES ($1, $2, NOW())
		 ON CONFLICT DO NOTHING`,
		userID, streamID)
	if err != nil {
		return domainErrors.NewStorageError("create like", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) DeleteLike(ctx context.Context, userID, streamID uuid.UUID) error {
	_, err := querier(ctx, r.pool).Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND stream_id = $2`, userID, streamID)
	if err != nil {
		return domainErrors.NewStorageError("delete like", err)
	}
	return nil
}

func (r *StreamRepositoryPostgres) CountLikes(ctx context.Context, streamID uuid.UUID) (int64, error) {
	var n int64
	err := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM likes WHERE stream_id = $1`, streamID).Scan(&n)
	if err != nil {
		return 0, domainErrors.NewStorageError("count likes", err)
	}
	return n, nil
}

var _ repository.StreamRepository = (*StreamRepositoryPostgres)(nil)
