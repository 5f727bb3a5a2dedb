package create_booking_request

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// BookingRequestRepository интерфейс репозитория заявок
type BookingRequestRepository interface {
	Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error)
}

// SettingsService интерфейс сервиса настроек доступности
type SettingsService interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
}

// EventPublisher интерфейс издателя событий по заявкам
type EventPublisher interface {
	PublishCreated(ctx context.Context, req *domain.BookingRequest) error
}

// MetricsRecorder счётчик результатов отправки заявок
type MetricsRecorder interface {
	IncBookingRequest(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
