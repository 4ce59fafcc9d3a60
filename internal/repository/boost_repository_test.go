package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"wheelix/internal/model"
)

// 1
func TestBoostCreate_GeneratesID(t *testing.T) {
	database, mock := newTestDatabase(t)
	repository := NewBoostRepository(database)

	purchasedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := purchasedAt.Add(72 * time.Hour)

	mock.ExpectExec(`INSERT INTO boosts`).
		WithArgs(sqlmock.AnyArg(), "car-id", "user-id", "tariff-id", purchasedAt, expiresAt, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	boost := &model.Boost{
		CarID:       "car-id",
		UserID:      "user-id",
		TariffID:    "tariff-id",
		PurchasedAt: purchasedAt,
		ExpiresAt:   expiresAt,
	}
	err := repository.Create(context.Background(), boost)

	assert.NoError(t, err)
	assert.NotEmpty(t, boost.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 2
func TestDeleteExpired_ReturnsRemovedCount(t *testing.T) {
	database, mock := newTestDatabase(t)
	repository := NewBoostRepository(database)

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM boosts WHERE expires_at <= $1`)).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 7))

	removed, err := repository.DeleteExpired(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
