package service

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"

	"wheelix/internal/model"
	"wheelix/internal/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type CarService struct {
	CarRepository ports.CarRepositoryInterface
}

func NewCarService(carRepository ports.CarRepositoryInterface) *CarService {
	return &CarService{CarRepository: carRepository}
}

func (service *CarService) Create(ctx context.Context, sellerID string, request *model.CreateCar) (*model.Car, error) {
	car := &model.Car{
		SellerID:       sellerID,
		BrandID:        request.BrandID,
		SeriesID:       request.SeriesID,
		GenerationID:   request.GenerationID,
		VIN:            strings.ToUpper(request.VIN),
		Year:           request.Year,
		Mileage:        request.Mileage,
		Price:          request.Price,
		Currency:       request.Currency,
		Engine:         request.Engine,
		Gearbox:        request.Gearbox,
		Drive:          request.Drive,
		SteeringSide:   request.SteeringSide,
		CustomsCleared: true,
		City:           request.City,
		Title:          request.Title,
		Description:    request.Description,
		Features:       pq.StringArray(request.Features),
		Photos:         pq.StringArray(request.Photos),
	}

	if car.Currency == "" {
		car.Currency = "KZT"
	}
	if car.SteeringSide == "" {
		car.SteeringSide = "left"
	}
	if request.CustomsCleared != nil {
		car.CustomsCleared = *request.CustomsCleared
	}
	if car.Features == nil {
		car.Features = []string{}
	}
	if car.Photos == nil {
		car.Photos = []string{}
	}

	if err := service.CarRepository.Create(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

// List нормализует параметры пагинации и возвращает страницу объявлений.
// Бустованные объявления идут первыми; статус буста вычисляется на момент запроса.
func (service *CarService) List(ctx context.Context, params model.CarListParams) (*model.CarList, error) {
	if params.Page < 1 {
		params.Page = defaultPage
	}
	if params.Limit < 1 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	cars, total, err := service.CarRepository.List(ctx, params, time.Now())
	if err != nil {
		return nil, err
	}

	return &model.CarList{Total: total, Page: params.Page, Docs: cars}, nil
}

func (service *CarService) One(ctx context.Context, id string) (*model.Car, error) {
	return service.CarRepository.FindByID(ctx, id)
}

func (service *CarService) Update(ctx context.Context, id string, sellerID string, request *model.UpdateCar) (*model.Car, error) {
	return service.CarRepository.Update(ctx, id, sellerID, request)
}

func (service *CarService) Delete(ctx context.Context, id string, sellerID string) error {
	return service.CarRepository.Delete(ctx, id, sellerID)
}
