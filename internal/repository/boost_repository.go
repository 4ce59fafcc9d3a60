package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wheelix/internal"
	"wheelix/internal/model"
)

type BoostRepository struct {
	*internal.Database
}

func NewBoostRepository(database *internal.Database) *BoostRepository {
	return &BoostRepository{database}
}

func (repository *BoostRepository) Create(ctx context.Context, boost *model.Boost) error {
	query := `INSERT INTO boosts (id, car_id, user_id, tariff_id, purchased_at, expires_at, payment_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if boost.ID == "" {
		boost.ID = uuid.New().String()
	}

	_, err := repository.DB.ExecContext(ctx, query,
		boost.ID, boost.CarID, boost.UserID, boost.TariffID,
		boost.PurchasedAt, boost.ExpiresAt, boost.PaymentID,
	)
	if err != nil {
		return fmt.Errorf("ошибка вставки буста: %w", err)
	}

	return nil
}

// DeleteExpired удаляет все бусты, истекшие к моменту now, и возвращает их число.
// Операция идемпотентна: повторный вызов без новых бустов удаляет ноль строк.
func (repository *BoostRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM boosts WHERE expires_at <= $1`

	result, err := repository.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления просроченных бустов: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("не удалось получить число удаленных бустов: %w", err)
	}

	return rowsAffected, nil
}
