package booking_requests

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// BookingRequestRepository интерфейс репозитория заявок
type BookingRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	List(ctx context.Context, filter domain.BookingRequestsFilter) ([]*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingRequestStatus) (time.Time, error)
}

// EventPublisher интерфейс издателя событий по заявкам
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, req *domain.BookingRequest, previous domain.BookingRequestStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
