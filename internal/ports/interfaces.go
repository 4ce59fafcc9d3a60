package ports

import (
	"context"
	"time"

	"wheelix/internal/model"
	"wheelix/internal/security"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
}

type JWTRepositoryInterface interface {
	SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error
	// DeleteByToken удаляет строку refresh токена и возвращает число удаленных строк.
	// Ротация продолжается только если удалена ровно одна строка.
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

type JWTServiceInterface interface {
	GenerateTokensPair(user *model.User) (*model.TokensPair, error)
	ValidateAccessToken(tokenStr string) (*security.Claims, error)
	ValidateRefreshToken(tokenStr string) (*security.Claims, error)
}

type CarRepositoryInterface interface {
	Create(ctx context.Context, car *model.Car) error
	List(ctx context.Context, params model.CarListParams, now time.Time) ([]model.Car, int, error)
	FindByID(ctx context.Context, id string) (*model.Car, error)
	Update(ctx context.Context, id string, sellerID string, upd *model.UpdateCar) (*model.Car, error)
	Delete(ctx context.Context, id string, sellerID string) error
}

type BoostRepositoryInterface interface {
	Create(ctx context.Context, boost *model.Boost) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TariffRepositoryInterface interface {
	FindByCode(ctx context.Context, code string) (*model.Tariff, error)
}

type AuthenticationServiceInterface interface {
	Register(ctx context.Context, request *model.CreateUser) (*model.User, error)
	Login(ctx context.Context, identifier string, password string) (*model.User, *model.TokensPair, error)
	Refresh(ctx context.Context, oldToken string) (*model.TokensPair, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type CarServiceInterface interface {
	Create(ctx context.Context, sellerID string, request *model.CreateCar) (*model.Car, error)
	List(ctx context.Context, params model.CarListParams) (*model.CarList, error)
	One(ctx context.Context, id string) (*model.Car, error)
	Update(ctx context.Context, id string, sellerID string, request *model.UpdateCar) (*model.Car, error)
	Delete(ctx context.Context, id string, sellerID string) error
}

type BoostServiceInterface interface {
	Buy(ctx context.Context, carID string, userID string, tariffCode string) (*model.Boost, error)
	SweepExpired(ctx context.Context) (int64, error)
}
