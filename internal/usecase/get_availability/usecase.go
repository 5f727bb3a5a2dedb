package get_availability

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/m04kA/PhotoStudio-BookingService/internal/availability"
)

// UseCase use case для получения календаря доступности
type UseCase struct {
	settingsService SettingsService
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsService SettingsService, logger Logger) *UseCase {
	return &UseCase{
		settingsService: settingsService,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: from=%q, to=%q", req.From, req.To)

	// 1. Получаем настройки
	settings, err := uc.settingsService.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	// 2. Вычисляем окно
	today := civil.DateOf(uc.timeProvider.Now())
	from, to, err := resolveWindow(req, today, settings.EffectiveAdvanceDays())
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid window: %v", err)
		return nil, err
	}

	// 3. Рассчитываем доступность
	days, err := availability.Compute(*settings, from, to)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidRange) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		uc.logger.Error("GetAvailability: failed to compute availability: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	available := 0
	for i := range days {
		available += days[i].AvailableCount()
	}
	uc.logger.Info("GetAvailability: computed %d days from=%s to=%s, available slots=%d", len(days), from, to, available)

	return &Response{
		Timezone: settings.Timezone,
		From:     from,
		To:       to,
		Days:     days,
	}, nil
}
