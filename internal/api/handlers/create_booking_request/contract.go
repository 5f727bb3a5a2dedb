package create_booking_request

import (
	"context"

	createBookingRequest "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/create_booking_request"
)

type CreateBookingRequestUseCase interface {
	Execute(ctx context.Context, req *createBookingRequest.Request) (*createBookingRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
