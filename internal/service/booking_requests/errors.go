package booking_requests

import "errors"

var (
	// ErrBookingRequestNotFound возвращается, когда заявка не найдена
	ErrBookingRequestNotFound = errors.New("booking request not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
