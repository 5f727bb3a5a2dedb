package list_booking_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	bookingRequests "github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service BookingRequestService
	logger  Logger
}

func NewHandler(service BookingRequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/booking-requests
// Query params: status, from, to, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(query.Get("status"), query.Get("from"), query.Get("to"), query.Get("limit"))
	if err != nil {
		h.logger.Warn("GET /admin/booking-requests - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookingRequests.ErrInvalidInput):
			h.logger.Warn("GET /admin/booking-requests - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/booking-requests - Failed to list booking requests: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/booking-requests - Booking requests retrieved: count=%d", len(result.BookingRequests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
