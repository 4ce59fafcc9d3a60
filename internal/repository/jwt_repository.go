package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wheelix/internal"
	"wheelix/internal/model"
)

type JWTRepository struct {
	*internal.Database
}

func NewJWTRepository(database *internal.Database) *JWTRepository {
	return &JWTRepository{database}
}

func (repository *JWTRepository) SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, token, user_id) VALUES ($1, $2, $3)`

	if token.ID == "" {
		token.ID = uuid.New().String()
	}

	_, err := repository.DB.ExecContext(ctx, query, token.ID, token.Token, token.UserID)
	if err != nil {
		return fmt.Errorf("ошибка вставки данных в БД: %w", err)
	}

	return nil
}

// DeleteByToken удаляет строку refresh токена по его значению.
// Возвращает число удаленных строк: ротация одноразовая, поэтому вызывающий
// продолжает выпуск новой пары только при ровно одной удаленной строке.
func (repository *JWTRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE token = $1`

	result, err := repository.DB.ExecContext(ctx, query, token)
	if err != nil {
		return 0, fmt.Errorf("не удалось удалить рефреш токен: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("не удалось проверить, удален ли токен: %w", err)
	}

	return rowsAffected, nil
}
