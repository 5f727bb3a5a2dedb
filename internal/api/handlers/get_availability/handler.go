package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange        = "дата окончания раньше даты начала"
	msgSettingsUnavailable = "календарь временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from, to (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(from, to))
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid date: from=%q, to=%q, error=%v", from, to, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: from=%q, to=%q", from, to)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailability.ErrSettingsUnavailable):
			h.logger.Error("GET /availability - Settings unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSettingsUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability computed: from=%s, to=%s, days=%d",
		result.From, result.To, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
