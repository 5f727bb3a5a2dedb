package domain

import "time"

// GalleryImage изображение галереи на медиа-хостинге
type GalleryImage struct {
	PublicID     string
	URL          string
	ThumbnailURL string
	Width        int
	Height       int
	Format       string
	Tags         []string
	CreatedAt    time.Time
}

// GalleryPage страница списка изображений
type GalleryPage struct {
	Images     []GalleryImage
	NextCursor string // Пусто, если это последняя страница
}
