package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
)

var carListColumns = []string{
	"id", "seller_id", "brand_id", "series_id", "generation_id", "vin",
	"year", "mileage", "price", "currency", "engine.volume", "engine.type",
	"gearbox", "drive", "steering_side", "customs_cleared", "city", "title",
	"description", "features", "photos", "views", "created_at", "updated_at",
	"is_boosted", "boost_expires_at",
}

func carRow(rows *sqlmock.Rows, id string, boostExpiresAt *time.Time) *sqlmock.Rows {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	var expiry interface{}
	if boostExpiresAt != nil {
		expiry = *boostExpiresAt
	}

	return rows.AddRow(
		id, "seller-id", "brand-id", "series-id", "generation-id", "WBA0000000000"+id,
		2020, 50000, int64(12000000), "KZT", 2.0, "petrol",
		"automatic", "rwd", "left", true, "Almaty", "BMW 530i",
		nil, []byte("{}"), []byte("{}"), 10, now, now,
		boostExpiresAt != nil, expiry,
	)
}

// 1
// Бустованные идут первыми, затем по сроку истечения буста; производные
// поля is_boosted и boost_expires_at сканируются из LATERAL подзапроса.
func TestCarList_BoostedOrderingAndScan(t *testing.T) {
	database, mock := newTestDatabase(t)
	repository := NewCarRepository(database)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	laterExpiry := now.Add(72 * time.Hour)
	soonerExpiry := now.Add(24 * time.Hour)

	rows := sqlmock.NewRows(carListColumns)
	carRow(rows, "car1", &laterExpiry)
	carRow(rows, "car2", &soonerExpiry)
	carRow(rows, "car3", nil)

	mock.ExpectQuery(`LEFT JOIN LATERAL`).
		WithArgs(now, sqlmock.AnyArg(), sqlmock.AnyArg(), false, 20, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT count\(\*\) FROM cars`).
		WithArgs(now, sqlmock.AnyArg(), sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	cars, total, err := repository.List(context.Background(), model.CarListParams{Page: 1, Limit: 20}, now)

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, cars, 3)

	assert.True(t, cars[0].IsBoosted)
	assert.Equal(t, laterExpiry, *cars[0].BoostExpiresAt)
	assert.True(t, cars[1].IsBoosted)
	assert.False(t, cars[2].IsBoosted)
	assert.Nil(t, cars[2].BoostExpiresAt)
	assert.Equal(t, 2.0, cars[0].Engine.Volume)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// 2
func TestCarList_PagingOffset(t *testing.T) {
	database, mock := newTestDatabase(t)
	repository := NewCarRepository(database)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`LEFT JOIN LATERAL`).
		WithArgs(now, sqlmock.AnyArg(), sqlmock.AnyArg(), true, 10, 30).
		WillReturnRows(sqlmock.NewRows(carListColumns))
	mock.ExpectQuery(`SELECT count\(\*\) FROM cars`).
		WithArgs(now, sqlmock.AnyArg(), sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(50))

	cars, total, err := repository.List(context.Background(),
		model.CarListParams{Page: 4, Limit: 10, Boosted: true}, now)

	assert.NoError(t, err)
	assert.Empty(t, cars)
	// страница за пределами выдачи не меняет общее число
	assert.Equal(t, 50, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// 3
func TestCarCreate_DuplicateVIN(t *testing.T) {
	database, mock := newTestDatabase(t)
	repository := NewCarRepository(database)

	mock.ExpectQuery(`INSERT INTO cars`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "cars_vin_key"})

	err := repository.Create(context.Background(), &model.Car{VIN: "WBA00000000000001"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 4
// Чужое объявление: удаление не затрагивает строк и неотличимо от отсутствующего.
func TestCarDelete_NotOwner(t *testing.T) {
	database, mock := newTestDatabase(t)
	repository := NewCarRepository(database)

	mock.ExpectExec(`DELETE FROM cars`).
		WithArgs("car-id", "stranger-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repository.Delete(context.Background(), "car-id", "stranger-id")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 5
func TestCarFindByID_IncrementsViews(t *testing.T) {
	database, mock := newTestDatabase(t)
	repository := NewCarRepository(database)

	rows := sqlmock.NewRows(carListColumns[:24])
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	rows.AddRow(
		"car-id", "seller-id", "brand-id", "series-id", "generation-id", "WBA00000000000001",
		2020, 50000, int64(12000000), "KZT", 2.0, "petrol",
		"automatic", "rwd", "left", true, "Almaty", "BMW 530i",
		nil, []byte("{}"), []byte("{}"), 11, now, now,
	)

	mock.ExpectQuery(`UPDATE cars c SET views = views \+ 1`).
		WithArgs("car-id").
		WillReturnRows(rows)

	car, err := repository.FindByID(context.Background(), "car-id")

	assert.NoError(t, err)
	assert.Equal(t, 11, car.Views)
	assert.Equal(t, "petrol", car.Engine.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
