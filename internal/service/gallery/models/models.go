package models

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// ListRequest запрос страницы галереи
type ListRequest struct {
	Cursor string
	Limit  int // 0 - значение по умолчанию
}

// ImageResponse изображение галереи
type ImageResponse struct {
	PublicID     string    `json:"publicId"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Format       string    `json:"format"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListResponse страница галереи
type ListResponse struct {
	Images     []ImageResponse `json:"images"`
	NextCursor string          `json:"nextCursor,omitempty"`
}

// FromDomainPage конвертирует domain страницу в DTO
func FromDomainPage(page *domain.GalleryPage) *ListResponse {
	resp := &ListResponse{Images: []ImageResponse{}}
	if page == nil {
		return resp
	}

	resp.NextCursor = page.NextCursor
	resp.Images = make([]ImageResponse, 0, len(page.Images))
	for _, img := range page.Images {
		resp.Images = append(resp.Images, ImageResponse{
			PublicID:     img.PublicID,
			URL:          img.URL,
			ThumbnailURL: img.ThumbnailURL,
			Width:        img.Width,
			Height:       img.Height,
			Format:       img.Format,
			Tags:         img.Tags,
			CreatedAt:    img.CreatedAt,
		})
	}

	return resp
}
