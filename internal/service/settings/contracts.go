package settings

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// SettingsCache интерфейс кэша настроек
type SettingsCache interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
	Set(ctx context.Context, settings *domain.AvailabilitySettings) error
	Delete(ctx context.Context) error
}

// CMSClient интерфейс клиента CMS
type CMSClient interface {
	GetAvailabilitySettings(ctx context.Context) (*domain.AvailabilitySettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
