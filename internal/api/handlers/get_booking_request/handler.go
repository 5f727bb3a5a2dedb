package get_booking_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	bookingRequests "github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests"
)

const (
	msgInvalidID = "некорректный ID заявки"
	msgNotFound  = "заявка не найдена"
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

// Handle GET /api/v1/admin/booking-requests/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /admin/booking-requests/{id} - Invalid ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bookingRequests.ErrBookingRequestNotFound):
			h.logger.Warn("GET /admin/booking-requests/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/booking-requests/{id} - Failed to get booking request: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/booking-requests/{id} - Booking request retrieved: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
