package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"wheelix/internal"
	"wheelix/internal/apperr"
	"wheelix/internal/model"
)

type CarRepository struct {
	*internal.Database
}

func NewCarRepository(database *internal.Database) *CarRepository {
	return &CarRepository{database}
}

const carColumns = `c.id, c.seller_id, c.brand_id, c.series_id, c.generation_id, c.vin,
	c.year, c.mileage, c.price, c.currency,
	c.engine_volume AS "engine.volume", c.engine_type AS "engine.type",
	c.gearbox, c.drive, c.steering_side, c.customs_cleared, c.city, c.title,
	c.description, c.features, c.photos, c.views, c.created_at, c.updated_at`

func (repository *CarRepository) Create(ctx context.Context, car *model.Car) error {
	query := `INSERT INTO cars (id, seller_id, brand_id, series_id, generation_id, vin,
				year, mileage, price, currency, engine_volume, engine_type,
				gearbox, drive, steering_side, customs_cleared, city, title,
				description, features, photos)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			  RETURNING created_at, updated_at`

	if car.ID == "" {
		car.ID = uuid.New().String()
	}

	err := repository.DB.QueryRowxContext(ctx, query,
		car.ID, car.SellerID, car.BrandID, car.SeriesID, car.GenerationID, car.VIN,
		car.Year, car.Mileage, car.Price, car.Currency, car.Engine.Volume, car.Engine.Type,
		car.Gearbox, car.Drive, car.SteeringSide, car.CustomsCleared, car.City, car.Title,
		car.Description, car.Features, car.Photos,
	).Scan(&car.CreatedAt, &car.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("ошибка вставки объявления: %w", err)
	}

	return nil
}

// List возвращает страницу объявлений и общее число подходящих под фильтр.
//
// Статус "boosted" — производное свойство на момент запроса: активным считается
// буст с expires_at строго больше now. LATERAL подзапрос берет буст с самым
// поздним истечением, поэтому при нескольких активных бустах ключ сортировки
// детерминирован. Порядок: сначала бустованные, среди них — по более позднему
// истечению буста, затем все — по свежести обновления.
func (repository *CarRepository) List(ctx context.Context, params model.CarListParams, now time.Time) ([]model.Car, int, error) {
	query := `SELECT ` + carColumns + `,
				b.expires_at IS NOT NULL AS is_boosted,
				b.expires_at AS boost_expires_at
			  FROM cars c
			  LEFT JOIN LATERAL (
				SELECT expires_at FROM boosts
				WHERE car_id = c.id AND expires_at > $1
				ORDER BY expires_at DESC
				LIMIT 1
			  ) b ON TRUE
			  WHERE ($2::uuid IS NULL OR c.brand_id = $2)
				AND ($3::text IS NULL OR c.city = $3)
				AND ($4::bool IS FALSE OR b.expires_at IS NOT NULL)
			  ORDER BY is_boosted DESC, boost_expires_at DESC NULLS LAST, c.updated_at DESC
			  LIMIT $5 OFFSET $6`

	brand := sql.NullString{String: params.Brand, Valid: params.Brand != ""}
	city := sql.NullString{String: params.City, Valid: params.City != ""}
	offset := (params.Page - 1) * params.Limit

	cars := []model.Car{}
	err := repository.DB.SelectContext(ctx, &cars, query, now, brand, city, params.Boosted, params.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка выборки объявлений: %w", err)
	}

	countQuery := `SELECT count(*) FROM cars c
				   WHERE ($2::uuid IS NULL OR c.brand_id = $2)
					 AND ($3::text IS NULL OR c.city = $3)
					 AND ($4::bool IS FALSE OR EXISTS (
						SELECT 1 FROM boosts b WHERE b.car_id = c.id AND b.expires_at > $1))`

	var total int
	if err := repository.DB.GetContext(ctx, &total, countQuery, now, brand, city, params.Boosted); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета объявлений: %w", err)
	}

	return cars, total, nil
}

// FindByID возвращает объявление и увеличивает счетчик просмотров.
func (repository *CarRepository) FindByID(ctx context.Context, id string) (*model.Car, error) {
	query := `UPDATE cars c SET views = views + 1 WHERE c.id = $1
			  RETURNING ` + carColumns

	var car model.Car
	err := repository.DB.QueryRowxContext(ctx, query, id).StructScan(&car)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка выборки объявления: %w", err)
	}

	return &car, nil
}

// Update изменяет объявление только если им владеет sellerID.
// Отсутствие строки и чужое объявление неразличимы для вызывающего.
func (repository *CarRepository) Update(ctx context.Context, id string, sellerID string, upd *model.UpdateCar) (*model.Car, error) {
	query := `UPDATE cars c SET
				price = COALESCE($3, price),
				currency = COALESCE($4, currency),
				mileage = COALESCE($5, mileage),
				city = COALESCE($6, city),
				title = COALESCE($7, title),
				description = COALESCE($8, description),
				customs_cleared = COALESCE($9, customs_cleared),
				features = COALESCE($10, features),
				photos = COALESCE($11, photos),
				updated_at = now()
			  WHERE c.id = $1 AND c.seller_id = $2
			  RETURNING ` + carColumns

	var features, photos interface{}
	if upd.Features != nil {
		features = pq.StringArray(*upd.Features)
	}
	if upd.Photos != nil {
		photos = pq.StringArray(*upd.Photos)
	}

	var car model.Car
	err := repository.DB.QueryRowxContext(ctx, query,
		id, sellerID,
		upd.Price, upd.Currency, upd.Mileage, upd.City, upd.Title,
		upd.Description, upd.CustomsCleared, features, photos,
	).StructScan(&car)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления объявления: %w", err)
	}

	return &car, nil
}

func (repository *CarRepository) Delete(ctx context.Context, id string, sellerID string) error {
	query := `DELETE FROM cars WHERE id = $1 AND seller_id = $2`

	result, err := repository.DB.ExecContext(ctx, query, id, sellerID)
	if err != nil {
		return fmt.Errorf("ошибка удаления объявления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("не удалось проверить, удалено ли объявление: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
