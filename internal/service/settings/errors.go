package settings

import "errors"

var (
	// ErrSettingsUnavailable возвращается, когда настройки не удалось получить ни из кэша, ни из CMS
	ErrSettingsUnavailable = errors.New("settings: availability settings unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)
