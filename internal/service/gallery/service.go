package gallery

import (
	"context"
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery/models"
)

// Service сервис галереи работ студии
type Service struct {
	client GalleryClient
	logger Logger
}

// NewService создает новый экземпляр сервиса галереи
func NewService(client GalleryClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List получает страницу изображений
// limit по умолчанию DefaultGalleryLimit, больше MaxGalleryLimit ограничивается
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	limit := req.Limit
	switch {
	case limit < 0:
		s.logger.Warn("List: negative limit=%d", limit)
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	case limit == 0:
		limit = domain.DefaultGalleryLimit
	case limit > domain.MaxGalleryLimit:
		limit = domain.MaxGalleryLimit
	}

	page, err := s.client.ListImages(ctx, req.Cursor, limit)
	if err != nil {
		s.logger.Error("List: failed to list gallery images: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGalleryUnavailable, err)
	}

	s.logger.Info("List: returned %d images, limit=%d", len(page.Images), limit)
	return models.FromDomainPage(page), nil
}
