package list_gallery

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery/models"
)

type GalleryService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
