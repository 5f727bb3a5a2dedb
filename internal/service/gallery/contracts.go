package gallery

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// GalleryClient интерфейс клиента медиа-хостинга
type GalleryClient interface {
	ListImages(ctx context.Context, cursor string, limit int) (*domain.GalleryPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
