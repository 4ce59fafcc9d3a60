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

type TariffRepository struct {
	*internal.Database
}

func NewTariffRepository(database *internal.Database) *TariffRepository {
	return &TariffRepository{database}
}

const tariffColumns = `id, code, label, duration_days, price_kzt, active`

func (repository *TariffRepository) Create(ctx context.Context, tariff *model.Tariff) error {
	query := `INSERT INTO tariffs (id, code, label, duration_days, price_kzt, active)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	if tariff.ID == "" {
		tariff.ID = uuid.New().String()
	}

	_, err := repository.DB.ExecContext(ctx, query,
		tariff.ID, tariff.Code, tariff.Label, tariff.DurationDays, tariff.PriceKZT, tariff.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("ошибка вставки тарифа: %w", err)
	}

	return nil
}

func (repository *TariffRepository) FindAll(ctx context.Context, page int, limit int) ([]model.Tariff, int, error) {
	tariffs := []model.Tariff{}

	query := `SELECT ` + tariffColumns + ` FROM tariffs ORDER BY code LIMIT $1 OFFSET $2`
	if err := repository.DB.SelectContext(ctx, &tariffs, query, limit, (page-1)*limit); err != nil {
		return nil, 0, fmt.Errorf("ошибка выборки тарифов: %w", err)
	}

	var total int
	if err := repository.DB.GetContext(ctx, &total, `SELECT count(*) FROM tariffs`); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета тарифов: %w", err)
	}

	return tariffs, total, nil
}

func (repository *TariffRepository) FindByID(ctx context.Context, id string) (*model.Tariff, error) {
	var tariff model.Tariff

	query := `SELECT ` + tariffColumns + ` FROM tariffs WHERE id = $1`
	if err := repository.DB.GetContext(ctx, &tariff, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка выборки тарифа: %w", err)
	}

	return &tariff, nil
}

func (repository *TariffRepository) FindByCode(ctx context.Context, code string) (*model.Tariff, error) {
	var tariff model.Tariff

	query := `SELECT ` + tariffColumns + ` FROM tariffs WHERE code = $1`
	if err := repository.DB.GetContext(ctx, &tariff, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка выборки тарифа: %w", err)
	}

	return &tariff, nil
}

func (repository *TariffRepository) Update(ctx context.Context, id string, upd *model.UpdateTariff) (*model.Tariff, error) {
	query := `UPDATE tariffs SET
				label = COALESCE($2, label),
				duration_days = COALESCE($3, duration_days),
				price_kzt = COALESCE($4, price_kzt),
				active = COALESCE($5, active)
			  WHERE id = $1
			  RETURNING ` + tariffColumns

	var tariff model.Tariff
	err := repository.DB.QueryRowxContext(ctx, query,
		id, upd.Label, upd.DurationDays, upd.PriceKZT, upd.Active,
	).StructScan(&tariff)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления тарифа: %w", err)
	}

	return &tariff, nil
}

func (repository *TariffRepository) Delete(ctx context.Context, id string) error {
	result, err := repository.DB.ExecContext(ctx, `DELETE FROM tariffs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления тарифа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("не удалось проверить, удален ли тариф: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
