package list_gallery

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery"
)

const (
	msgInvalidParams      = "некорректные параметры запроса"
	msgGalleryUnavailable = "галерея временно недоступна"
)

type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/gallery
// Query params: cursor, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query().Get("cursor"), r.URL.Query().Get("limit"))
	if err != nil {
		h.logger.Warn("GET /gallery - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, gallery.ErrInvalidInput):
			h.logger.Warn("GET /gallery - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, gallery.ErrGalleryUnavailable):
			h.logger.Error("GET /gallery - Gallery unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgGalleryUnavailable)

		default:
			h.logger.Error("GET /gallery - Failed to list images: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /gallery - Images retrieved: count=%d", len(result.Images))
	handlers.RespondJSON(w, http.StatusOK, result)
}
