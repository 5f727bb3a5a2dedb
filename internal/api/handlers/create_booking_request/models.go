package create_booking_request

import (
	"time"

	createBookingRequest "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/create_booking_request"
)

// CreateBookingRequestBody HTTP request model
type CreateBookingRequestBody struct {
	Date    string  `json:"date"` // "2025-07-02"
	Time    string  `json:"time"` // "10:00"
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message *string `json:"message,omitempty"`
	Consent bool    `json:"consent"`
}

// BookingRequestResponse HTTP response model
type BookingRequestResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequestBody) ToUseCaseRequest() *createBookingRequest.Request {
	return &createBookingRequest.Request{
		Date:    r.Date,
		Time:    r.Time,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
		Consent: r.Consent,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBookingRequest.Response) *BookingRequestResponse {
	return &BookingRequestResponse{
		Reference: resp.Reference.String(),
		Status:    resp.Status,
		Date:      resp.Date.String(),
		Time:      resp.Time,
		Timezone:  resp.Timezone,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
