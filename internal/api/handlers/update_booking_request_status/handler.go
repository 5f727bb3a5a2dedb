package update_booking_request_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	bookingRequests "github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests"
)

const (
	msgInvalidID          = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус заявки"
	msgNotFound           = "заявка не найдена"
	msgInvalidTransition  = "недопустимая смена статуса заявки"
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

// Handle PATCH /api/v1/admin/booking-requests/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /admin/booking-requests/{id}/status - Invalid ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body UpdateStatusBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /admin/booking-requests/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, body.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookingRequests.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/booking-requests/{id}/status - Invalid status: id=%d, status=%q", id, body.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookingRequests.ErrBookingRequestNotFound):
			h.logger.Warn("PATCH /admin/booking-requests/{id}/status - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingRequests.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/booking-requests/{id}/status - Transition rejected: id=%d, error=%v", id, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/booking-requests/{id}/status - Failed to update status: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/booking-requests/{id}/status - Status updated: id=%d, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
