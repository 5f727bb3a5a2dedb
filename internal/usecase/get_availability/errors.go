package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных датах в запросе
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInvalidRange возвращается, когда конец окна раньше начала
	ErrInvalidRange = errors.New("get_availability: to is before from")

	// ErrSettingsUnavailable возвращается, когда настройки доступности не удалось получить
	ErrSettingsUnavailable = errors.New("get_availability: availability settings unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
