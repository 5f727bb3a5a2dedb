package notifier

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Типы событий
const (
	EventBookingRequestCreated       = "booking_request.created"
	EventBookingRequestStatusChanged = "booking_request.status_changed"
)

// Event конверт события
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// BookingRequestPayload данные заявки в событии
type BookingRequestPayload struct {
	ID             int64   `json:"id"`
	Reference      string  `json:"reference"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Timezone       string  `json:"timezone"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Message        *string `json:"message,omitempty"`
	Status         string  `json:"status"`
	PreviousStatus string  `json:"previousStatus,omitempty"`
}

func newBookingRequestPayload(req *domain.BookingRequest) BookingRequestPayload {
	return BookingRequestPayload{
		ID:        req.ID,
		Reference: req.Reference.String(),
		Date:      req.Date.String(),
		Time:      req.Time,
		Timezone:  req.Timezone,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    string(req.Status),
	}
}
