package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// toGalleryImage конвертирует ресурс Admin API в изображение галереи
func toGalleryImage(a api.BriefAssetResult, thumbnailURL string) domain.GalleryImage {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.GalleryImage{
		PublicID:     a.PublicID,
		URL:          a.SecureURL,
		ThumbnailURL: thumbnailURL,
		Width:        a.Width,
		Height:       a.Height,
		Format:       a.Format,
		Tags:         tags,
		CreatedAt:    a.CreatedAt,
	}
}
