package get_booking_request

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests/models"
)

type BookingRequestService interface {
	GetByID(ctx context.Context, id int64) (*models.BookingRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
