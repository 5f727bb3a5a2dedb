package update_booking_request_status

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests/models"
)

type BookingRequestService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
