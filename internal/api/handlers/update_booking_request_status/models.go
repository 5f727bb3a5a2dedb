package update_booking_request_status

import (
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests/models"
)

// UpdateStatusBody HTTP request model
type UpdateStatusBody struct {
	Status string `json:"status"` // confirmed, done, cancelled
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (b *UpdateStatusBody) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status: b.Status,
	}
}
