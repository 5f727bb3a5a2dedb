package list_booking_requests

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests/models"
)

type BookingRequestService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.BookingRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
