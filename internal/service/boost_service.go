package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"wheelix/internal/apperr"
	"wheelix/internal/logger"
	"wheelix/internal/model"
	"wheelix/internal/ports"
)

type BoostService struct {
	BoostRepository  ports.BoostRepositoryInterface
	TariffRepository ports.TariffRepositoryInterface

	// now подменяется в тестах.
	now func() time.Time
}

func NewBoostService(boostRepository ports.BoostRepositoryInterface, tariffRepository ports.TariffRepositoryInterface) *BoostService {
	return &BoostService{
		BoostRepository:  boostRepository,
		TariffRepository: tariffRepository,
		now:              time.Now,
	}
}

// Buy покупает продвижение объявления по коду тарифа.
// Срок действия — покупка плюс длительность тарифа в сутках.
func (service *BoostService) Buy(ctx context.Context, carID string, userID string, tariffCode string) (*model.Boost, error) {
	tariff, err := service.TariffRepository.FindByCode(ctx, tariffCode)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("не удалось найти тариф: %w", err)
	}

	purchasedAt := service.now()
	boost := &model.Boost{
		CarID:       carID,
		UserID:      userID,
		TariffID:    tariff.ID,
		PurchasedAt: purchasedAt,
		ExpiresAt:   purchasedAt.Add(time.Duration(tariff.DurationDays) * 24 * time.Hour),
	}

	if err := service.BoostRepository.Create(ctx, boost); err != nil {
		return nil, fmt.Errorf("не удалось сохранить буст: %w", err)
	}

	return boost, nil
}

// SweepExpired физически удаляет бусты, истекшие к текущему моменту.
// Логически они и так не учитываются при ранжировании, очистка нужна
// только для освобождения места; вызов безопасно повторять.
func (service *BoostService) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := service.BoostRepository.DeleteExpired(ctx, service.now())
	if err != nil {
		return 0, fmt.Errorf("не удалось удалить просроченные бусты: %w", err)
	}

	if removed > 0 {
		logger.Info("просроченные бусты удалены", zap.Int64("removed", removed))
	}

	return removed, nil
}
