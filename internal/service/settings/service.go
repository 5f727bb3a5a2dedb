package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	settingsCache "github.com/m04kA/PhotoStudio-BookingService/internal/infra/cache/settings"
)

// Service сервис настроек доступности: кэш в Redis поверх CMS
type Service struct {
	cache     SettingsCache
	cmsClient CMSClient
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
// cache может быть nil, тогда каждый запрос идёт в CMS
func NewService(cache SettingsCache, cmsClient CMSClient, logger Logger) *Service {
	return &Service{
		cache:     cache,
		cmsClient: cmsClient,
		logger:    logger,
	}
}

// Get возвращает актуальные настройки доступности
// Ошибки кэша не прерывают запрос, настройки берутся из CMS
func (s *Service) Get(ctx context.Context) (*domain.AvailabilitySettings, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, settingsCache.ErrCacheMiss) {
			s.logger.Warn("Settings.Get: cache read failed, falling back to CMS: %v", err)
		}
	}

	settings, err := s.cmsClient.GetAvailabilitySettings(ctx)
	if err != nil {
		s.logger.Error("Settings.Get: failed to fetch settings from CMS: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, settings); err != nil {
			s.logger.Warn("Settings.Get: failed to store settings in cache: %v", err)
		}
	}

	return settings, nil
}

// Invalidate сбрасывает кэш настроек
// Вызывается по вебхуку CMS после публикации документа
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	if err := s.cache.Delete(ctx); err != nil {
		s.logger.Error("Settings.Invalidate: failed to delete cached settings: %v", err)
		return fmt.Errorf("%w: failed to invalidate cache: %v", ErrInternal, err)
	}

	s.logger.Info("Settings.Invalidate: cached settings dropped")
	return nil
}
