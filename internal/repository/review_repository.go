package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wheelix/internal"
	"wheelix/internal/apperr"
	"wheelix/internal/model"
)

type ReviewRepository struct {
	*internal.Database
}

func NewReviewRepository(database *internal.Database) *ReviewRepository {
	return &ReviewRepository{database}
}

const reviewColumns = `id, user_id, car_id, rating, comment, created_at, updated_at`

func (repository *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `INSERT INTO reviews (id, user_id, car_id, rating, comment)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING created_at, updated_at`

	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	err := repository.DB.QueryRowxContext(ctx, query,
		review.ID, review.UserID, review.CarID, review.Rating, review.Comment,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("ошибка вставки отзыва: %w", err)
	}

	return nil
}

func (repository *ReviewRepository) FindByCar(ctx context.Context, carID string) ([]model.Review, error) {
	reviews := []model.Review{}

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE car_id = $1 ORDER BY created_at DESC`
	if err := repository.DB.SelectContext(ctx, &reviews, query, carID); err != nil {
		return nil, fmt.Errorf("ошибка выборки отзывов: %w", err)
	}

	return reviews, nil
}

// Update изменяет отзыв только его автору; чужой отзыв выглядит как отсутствующий.
func (repository *ReviewRepository) Update(ctx context.Context, id string, userID string, upd *model.UpdateReview) (*model.Review, error) {
	query := `UPDATE reviews SET
				rating = COALESCE($3, rating),
				comment = COALESCE($4, comment),
				updated_at = now()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + reviewColumns

	var review model.Review
	err := repository.DB.QueryRowxContext(ctx, query, id, userID, upd.Rating, upd.Comment).StructScan(&review)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления отзыва: %w", err)
	}

	return &review, nil
}

func (repository *ReviewRepository) Delete(ctx context.Context, id string, userID string) error {
	result, err := repository.DB.ExecContext(ctx,
		`DELETE FROM reviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления отзыва: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("не удалось проверить, удален ли отзыв: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
