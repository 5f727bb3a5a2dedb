package create_booking_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking_request: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("create_booking_request: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата дальше максимального окна календаря
	ErrDateTooFarInFuture = errors.New("create_booking_request: date is too far in the future")

	// ErrUnknownTime возвращается, когда время не входит в список времён начала
	ErrUnknownTime = errors.New("create_booking_request: unknown start time")

	// ErrSlotNotAvailable возвращается, когда день закрыт или время заблокировано
	ErrSlotNotAvailable = errors.New("create_booking_request: slot is not available")

	// ErrSettingsUnavailable возвращается, когда настройки доступности не удалось получить
	ErrSettingsUnavailable = errors.New("create_booking_request: availability settings unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking_request: internal error")
)
