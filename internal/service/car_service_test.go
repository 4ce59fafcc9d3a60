package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wheelix/internal/model"
)

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) Create(ctx context.Context, car *model.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *MockCarRepository) List(ctx context.Context, params model.CarListParams, now time.Time) ([]model.Car, int, error) {
	args := m.Called(ctx, params, now)
	cars, _ := args.Get(0).([]model.Car)
	return cars, args.Int(1), args.Error(2)
}

func (m *MockCarRepository) FindByID(ctx context.Context, id string) (*model.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*model.Car)
	return car, args.Error(1)
}

func (m *MockCarRepository) Update(ctx context.Context, id string, sellerID string, upd *model.UpdateCar) (*model.Car, error) {
	args := m.Called(ctx, id, sellerID, upd)
	car, _ := args.Get(0).(*model.Car)
	return car, args.Error(1)
}

func (m *MockCarRepository) Delete(ctx context.Context, id string, sellerID string) error {
	return m.Called(ctx, id, sellerID).Error(0)
}

// 1
func TestCarCreate_Defaults(t *testing.T) {
	ctx := context.Background()
	mockCars := new(MockCarRepository)
	carService := NewCarService(mockCars)

	mockCars.On("Create", ctx, mock.Anything).Return(nil)

	car, err := carService.Create(ctx, "seller-id", &model.CreateCar{
		BrandID:      "brand-id",
		SeriesID:     "series-id",
		GenerationID: "generation-id",
		VIN:          "wba00000000000001",
		Year:         2020,
		Price:        12000000,
		Gearbox:      "automatic",
		Drive:        "rwd",
		City:         "Almaty",
		Title:        "BMW 530i",
	})

	assert.NoError(t, err)
	assert.Equal(t, "seller-id", car.SellerID)
	// VIN нормализуется к верхнему регистру
	assert.Equal(t, "WBA00000000000001", car.VIN)
	assert.Equal(t, "KZT", car.Currency)
	assert.Equal(t, "left", car.SteeringSide)
	assert.True(t, car.CustomsCleared)
	assert.NotNil(t, car.Features)
	assert.NotNil(t, car.Photos)
}

// 2
func TestCarList_NormalizesPaging(t *testing.T) {
	ctx := context.Background()
	mockCars := new(MockCarRepository)
	carService := NewCarService(mockCars)

	mockCars.On("List", ctx, mock.MatchedBy(func(params model.CarListParams) bool {
		return params.Page == 1 && params.Limit == 20
	}), mock.Anything).Return([]model.Car{}, 0, nil).Once()

	list, err := carService.List(ctx, model.CarListParams{Page: 0, Limit: -5})
	assert.NoError(t, err)
	assert.Equal(t, 1, list.Page)

	mockCars.On("List", ctx, mock.MatchedBy(func(params model.CarListParams) bool {
		return params.Limit == 100
	}), mock.Anything).Return([]model.Car{}, 0, nil).Once()

	_, err = carService.List(ctx, model.CarListParams{Page: 1, Limit: 1000})
	assert.NoError(t, err)

	mockCars.AssertExpectations(t)
}

// 3
func TestCarList_ResponseShape(t *testing.T) {
	ctx := context.Background()
	mockCars := new(MockCarRepository)
	carService := NewCarService(mockCars)

	mockCars.On("List", ctx, mock.Anything, mock.Anything).
		Return([]model.Car{{ID: "car1"}, {ID: "car2"}}, 42, nil)

	list, err := carService.List(ctx, model.CarListParams{Page: 2, Limit: 2})

	assert.NoError(t, err)
	assert.Equal(t, 42, list.Total)
	assert.Equal(t, 2, list.Page)
	assert.Len(t, list.Docs, 2)
}
