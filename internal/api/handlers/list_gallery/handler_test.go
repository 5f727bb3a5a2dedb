package list_gallery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	resp    *models.ListResponse
	err     error
	lastReq *models.ListRequest
}

func (f *fakeService) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestHandler_Handle_Success(t *testing.T) {
	svc := &fakeService{resp: &models.ListResponse{
		Images:     []models.ImageResponse{{PublicID: "portfolio/a", URL: "https://img/a.jpg", Tags: []string{}}},
		NextCursor: "c2",
	}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/gallery?cursor=c1&limit=12", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", svc.lastReq.Cursor)
	assert.Equal(t, 12, svc.lastReq.Limit)
	assert.Contains(t, rec.Body.String(), `"nextCursor":"c2"`)
	assert.Contains(t, rec.Body.String(), `"publicId":"portfolio/a"`)
}

func TestHandler_Handle_InvalidLimit(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/gallery?limit=many", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastReq)
}

func TestHandler_Handle_ServiceErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: gallery.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: gallery.ErrGalleryUnavailable, wantStatus: http.StatusServiceUnavailable},
		{err: errors.New("unexpected"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeService{err: fmt.Errorf("%w: wrapped", tt.err)}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/gallery", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
