package list_booking_requests

import (
	"fmt"
	"strconv"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустая строка означает, что фильтр не задан
func ToServiceRequest(statusStr, fromStr, toStr, limitStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if statusStr != "" {
		req.Status = &statusStr
	}
	if fromStr != "" {
		req.FromDate = &fromStr
	}
	if toStr != "" {
		req.ToDate = &toStr
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid limit value: %q", limitStr)
		}
		req.Limit = limit
	}

	return req, nil
}
