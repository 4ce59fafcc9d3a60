package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
)

type MockBoostRepository struct {
	mock.Mock
}

type MockTariffRepository struct {
	mock.Mock
}

func (m *MockBoostRepository) Create(ctx context.Context, boost *model.Boost) error {
	return m.Called(ctx, boost).Error(0)
}

func (m *MockBoostRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTariffRepository) FindByCode(ctx context.Context, code string) (*model.Tariff, error) {
	args := m.Called(ctx, code)
	tariff, _ := args.Get(0).(*model.Tariff)
	return tariff, args.Error(1)
}

// 1
func TestBuy_ExpiryFromTariffDuration(t *testing.T) {
	ctx := context.Background()
	mockBoosts := new(MockBoostRepository)
	mockTariffs := new(MockTariffRepository)

	boostService := NewBoostService(mockBoosts, mockTariffs)

	purchasedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	boostService.now = func() time.Time { return purchasedAt }

	mockTariffs.On("FindByCode", ctx, "TOP3").
		Return(&model.Tariff{ID: "tariff-id", Code: "TOP3", DurationDays: 3}, nil)
	mockBoosts.On("Create", ctx, mock.Anything).Return(nil)

	boost, err := boostService.Buy(ctx, "car-id", "user-id", "TOP3")

	assert.NoError(t, err)
	assert.Equal(t, purchasedAt, boost.PurchasedAt)
	assert.Equal(t, purchasedAt.Add(72*time.Hour), boost.ExpiresAt)
	assert.Equal(t, "tariff-id", boost.TariffID)
}

// 2
func TestBuy_TariffNotFound(t *testing.T) {
	ctx := context.Background()
	mockBoosts := new(MockBoostRepository)
	mockTariffs := new(MockTariffRepository)

	boostService := NewBoostService(mockBoosts, mockTariffs)

	mockTariffs.On("FindByCode", ctx, "TOP99").Return(nil, apperr.ErrNotFound)

	_, err := boostService.Buy(ctx, "car-id", "user-id", "TOP99")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mockBoosts.AssertNotCalled(t, "Create")
}

// 3
func TestBuy_CreateFails(t *testing.T) {
	ctx := context.Background()
	mockBoosts := new(MockBoostRepository)
	mockTariffs := new(MockTariffRepository)

	boostService := NewBoostService(mockBoosts, mockTariffs)

	mockTariffs.On("FindByCode", ctx, "TOP7").
		Return(&model.Tariff{ID: "tariff-id", Code: "TOP7", DurationDays: 7}, nil)
	mockBoosts.On("Create", ctx, mock.Anything).Return(fmt.Errorf("database error"))

	_, err := boostService.Buy(ctx, "car-id", "user-id", "TOP7")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не удалось сохранить буст")
}

// 4
// Повторный запуск очистки безопасен: второй вызов просто удаляет 0 строк.
func TestSweepExpired_Idempotent(t *testing.T) {
	ctx := context.Background()
	mockBoosts := new(MockBoostRepository)

	boostService := NewBoostService(mockBoosts, new(MockTariffRepository))

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	boostService.now = func() time.Time { return now }

	mockBoosts.On("DeleteExpired", ctx, now).Return(int64(4), nil).Once()
	mockBoosts.On("DeleteExpired", ctx, now).Return(int64(0), nil).Once()

	removed, err := boostService.SweepExpired(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	removed, err = boostService.SweepExpired(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}
