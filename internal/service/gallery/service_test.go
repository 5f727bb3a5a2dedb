package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	page       *domain.GalleryPage
	err        error
	lastCursor string
	lastLimit  int
}

func (c *fakeClient) ListImages(ctx context.Context, cursor string, limit int) (*domain.GalleryPage, error) {
	c.lastCursor = cursor
	c.lastLimit = limit
	if c.err != nil {
		return nil, c.err
	}
	return c.page, nil
}

func TestService_List(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	client := &fakeClient{page: &domain.GalleryPage{
		Images: []domain.GalleryImage{
			{PublicID: "portfolio/a", URL: "https://img/a.jpg", Width: 800, Height: 600, Format: "jpg", Tags: []string{"wedding"}, CreatedAt: created},
		},
		NextCursor: "next-1",
	}}
	svc := NewService(client, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{Cursor: "abc", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "abc", client.lastCursor)
	assert.Equal(t, 10, client.lastLimit)
	assert.Equal(t, "next-1", resp.NextCursor)
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "portfolio/a", resp.Images[0].PublicID)
	assert.Equal(t, []string{"wedding"}, resp.Images[0].Tags)
}

func TestService_List_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
		wantErr   error
	}{
		{name: "default", limit: 0, wantLimit: domain.DefaultGalleryLimit},
		{name: "within range", limit: 50, wantLimit: 50},
		{name: "capped", limit: 1000, wantLimit: domain.MaxGalleryLimit},
		{name: "negative", limit: -1, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{page: &domain.GalleryPage{}}
			svc := NewService(client, nopLogger{})

			_, err := svc.List(context.Background(), &models.ListRequest{Limit: tt.limit})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, client.lastLimit)
		})
	}
}

func TestService_List_ClientError(t *testing.T) {
	svc := NewService(&fakeClient{err: errors.New("timeout")}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{})
	assert.ErrorIs(t, err, ErrGalleryUnavailable)
}

func TestFromDomainPage_Empty(t *testing.T) {
	resp := models.FromDomainPage(&domain.GalleryPage{})
	assert.NotNil(t, resp.Images)
	assert.Empty(t, resp.NextCursor)
}
