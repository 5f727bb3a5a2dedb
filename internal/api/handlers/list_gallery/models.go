package list_gallery

import (
	"fmt"
	"strconv"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/gallery/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(cursor, limitStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{Cursor: cursor}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid limit value: %q", limitStr)
		}
		req.Limit = limit
	}

	return req, nil
}
