package cloudinary

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент медиа-хостинга галереи
type Client struct {
	cld            *cloudinary.Cloudinary
	folder         string
	transformation string
	log            Logger
}

// NewClient создает клиент по учётным данным аккаунта
// folder - префикс public_id изображений галереи
// transformation - трансформация для миниатюр, например "c_fill,w_400,h_400"
func NewClient(cloudName, apiKey, apiSecret, folder, transformation string, log Logger) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	return &Client{
		cld:            cld,
		folder:         strings.Trim(folder, "/"),
		transformation: transformation,
		log:            log,
	}, nil
}

// ListImages получает страницу изображений папки галереи
func (c *Client) ListImages(ctx context.Context, cursor string, limit int) (*domain.GalleryPage, error) {
	params := admin.AssetsParams{
		AssetType:    api.Image,
		DeliveryType: string(api.Upload),
		MaxResults:   limit,
		NextCursor:   cursor,
		Tags:         api.Bool(true),
	}
	if c.folder != "" {
		params.Prefix = c.folder + "/"
	}

	result, err := c.cld.Admin.Assets(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, result.Error.Message)
	}

	page := &domain.GalleryPage{
		Images:     make([]domain.GalleryImage, 0, len(result.Assets)),
		NextCursor: result.NextCursor,
	}

	for _, a := range result.Assets {
		page.Images = append(page.Images, toGalleryImage(a, c.thumbnailURL(a.PublicID)))
	}

	c.log.Info("Cloudinary: listed %d images, folder=%s, hasMore=%t", len(page.Images), c.folder, page.NextCursor != "")
	return page, nil
}

// thumbnailURL строит URL миниатюры
// При ошибке возвращает пустую строку, клиент покажет оригинал
func (c *Client) thumbnailURL(publicID string) string {
	img, err := c.cld.Image(publicID)
	if err != nil {
		c.log.Warn("Cloudinary: failed to build asset for public_id=%s: %v", publicID, err)
		return ""
	}
	img.Transformation = c.transformation

	url, err := img.String()
	if err != nil {
		c.log.Warn("Cloudinary: failed to build thumbnail url for public_id=%s: %v", publicID, err)
		return ""
	}
	return url
}
