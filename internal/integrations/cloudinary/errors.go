package cloudinary

import "errors"

var (
	// ErrInit возвращается, когда клиент не удалось создать
	ErrInit = errors.New("cloudinary client: failed to initialize")

	// ErrUnavailable возвращается при ошибках обращения к Admin API
	ErrUnavailable = errors.New("cloudinary client: service unavailable")

	// ErrInvalidResponse возвращается, когда Admin API вернул ошибку в теле ответа
	ErrInvalidResponse = errors.New("cloudinary client: invalid response")
)
