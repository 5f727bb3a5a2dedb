package gallery

import "errors"

var (
	// ErrInvalidInput - некорректные параметры запроса
	ErrInvalidInput = errors.New("invalid input")

	// ErrGalleryUnavailable - медиа-хостинг недоступен
	ErrGalleryUnavailable = errors.New("gallery unavailable")
)
