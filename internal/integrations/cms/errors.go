package cms

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда документ настроек не опубликован
	ErrSettingsNotFound = errors.New("cms client: availability settings not found")

	// ErrUnavailable возвращается при сетевых ошибках и таймаутах
	ErrUnavailable = errors.New("cms client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cms client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от CMS
	ErrInvalidResponse = errors.New("cms client: invalid response")
)
