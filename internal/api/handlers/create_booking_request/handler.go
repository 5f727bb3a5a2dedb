package create_booking_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	createBookingRequest "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/create_booking_request"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidData         = "некорректные данные заявки"
	msgInvalidBookingDate  = "дата съёмки уже прошла"
	msgDateTooFar          = "дата съёмки слишком далеко в будущем"
	msgUnknownTime         = "студия не принимает съёмки в указанное время"
	msgSlotNotAvailable    = "выбранное время недоступно"
	msgSettingsUnavailable = "приём заявок временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequestBody
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBookingRequest.ErrInvalidInput):
			h.logger.Warn("POST /booking-requests - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createBookingRequest.ErrInvalidDate):
			h.logger.Warn("POST /booking-requests - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBookingRequest.ErrDateTooFarInFuture):
			h.logger.Warn("POST /booking-requests - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBookingRequest.ErrUnknownTime):
			h.logger.Warn("POST /booking-requests - Unknown start time: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgUnknownTime)

		case errors.Is(err, createBookingRequest.ErrSlotNotAvailable):
			h.logger.Warn("POST /booking-requests - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBookingRequest.ErrSettingsUnavailable):
			h.logger.Error("POST /booking-requests - Settings unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSettingsUnavailable)

		default:
			h.logger.Error("POST /booking-requests - Failed to create booking request: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-requests - Booking request created: id=%d, reference=%s", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
