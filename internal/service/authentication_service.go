package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wheelix/internal/apperr"
	"wheelix/internal/logger"
	"wheelix/internal/model"
	"wheelix/internal/ports"
)

type AuthenticationService struct {
	UserRepository ports.UserRepositoryInterface
	JWTRepository  ports.JWTRepositoryInterface
	JWTService     ports.JWTServiceInterface
}

func NewAuthenticationService(
	userRepository ports.UserRepositoryInterface,
	jwtRepository ports.JWTRepositoryInterface,
	jwtService ports.JWTServiceInterface,
) *AuthenticationService {
	return &AuthenticationService{
		UserRepository: userRepository,
		JWTRepository:  jwtRepository,
		JWTService:     jwtService,
	}
}

func (service *AuthenticationService) Register(ctx context.Context, request *model.CreateUser) (*model.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка хэширования пароля: %w", err)
	}

	user := &model.User{
		Phone:        request.Phone,
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: string(passwordHash),
		City:         request.City,
	}

	if err := service.UserRepository.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.ErrConflict
		}
		return nil, fmt.Errorf("не удалось зарегистрировать пользователя: %w", err)
	}

	return user, nil
}

// Login проверяет пару идентификатор/пароль и выпускает новую пару токенов.
// Идентификатором может быть телефон или email.
func (service *AuthenticationService) Login(ctx context.Context, identifier string, password string) (*model.User, *model.TokensPair, error) {
	user, err := service.UserRepository.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil, apperr.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("не удалось найти пользователя: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	tokensPair, err := service.JWTService.GenerateTokensPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	refreshToken := &model.RefreshToken{Token: tokensPair.RefreshToken, UserID: user.ID}
	if err := service.JWTRepository.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, nil, fmt.Errorf("не удалось сохранить рефреш токен: %w", err)
	}

	return user, tokensPair, nil
}

// Refresh обменивает refresh токен на новую пару токенов.
//
// Ротация одноразовая: старый токен удаляется условной операцией, и выпуск
// новой пары продолжается только если удалена ровно одна строка. Из двух
// конкурентных запросов с одним и тем же токеном успеет не более одного.
func (service *AuthenticationService) Refresh(ctx context.Context, oldToken string) (*model.TokensPair, error) {
	claims, err := service.JWTService.ValidateRefreshToken(oldToken)
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}

	user, err := service.UserRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidToken
		}
		return nil, fmt.Errorf("не удалось найти пользователя: %w", err)
	}

	deleted, err := service.JWTRepository.DeleteByToken(ctx, oldToken)
	if err != nil {
		return nil, fmt.Errorf("не удалось использовать токен: %w", err)
	}
	if deleted != 1 {
		logger.Info("повторная попытка ротации refresh токена", zap.String("user_id", user.ID))
		return nil, apperr.ErrInvalidToken
	}

	tokensPair, err := service.JWTService.GenerateTokensPair(user)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	refreshToken := &model.RefreshToken{Token: tokensPair.RefreshToken, UserID: user.ID}
	if err := service.JWTRepository.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("не удалось сохранить рефреш токен: %w", err)
	}

	return tokensPair, nil
}

func (service *AuthenticationService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := service.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить пользователей: %w", err)
	}
	return users, nil
}
