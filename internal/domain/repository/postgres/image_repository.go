// File: internal/domain/repository/postgres/image_repository.go
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/models"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/repository"
)

// ImageRepositoryPostgres implements repository.ImageRepository.
type ImageRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewImageRepositoryPostgres(pool *pgxpool.Pool) *ImageRepositoryPostgres {
	return &ImageRepositoryPostgres{pool: pool}
}

func (r *ImageRepositoryPostgres) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (id, user_id, object_key, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := querier(ctx, r.pool).Exec(ctx, query,
		image.ID, image.UserID, image.ObjectKey, image.CreatedAt)
	if err != nil {
		return domainErrors.NewStorageError("create image", err)
	}
	return nil
}

func (r *ImageRepositoryPostgres) FindByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	img := &models.Image{}
	err := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT id, user_id, object_key, created_at FROM images WHERE id = $1`, id).
		Scan(&img.ID, &img.UserID, &img.ObjectKey, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrImageNotFound
		}
		return nil, domainErrors.NewStorageError("find image", err)
	}
	return img, nil
}

func (r *ImageRepositoryPostgres) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Image, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, object_key, created_at FROM images WHERE user_id = $1`, userID)
	if err != nil {
		return nil, domainErrors.NewStorageError("list images", err)
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.UserID, &img.ObjectKey, &img.CreatedAt); err != nil {
			return nil, domainErrors.NewStorageError("scan image", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewStorageError("list images", err)
	}
	return images, nil
}

func (r *ImageRepositoryPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return domainErrors.NewStorageError("delete image", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrImageNotFound
	}
	return nil
}

func (r *ImageRepositoryPostgres) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM images WHERE user_id = $1`, userID)
	if err != nil {
		return domainErrors.NewStorageError("delete images by user", err)
	}
	return nil
}

var _ repository.ImageRepository = (*ImageRepositoryPostgres)(nil)
