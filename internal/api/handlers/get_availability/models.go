package get_availability

import (
	getAvailability "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Timezone string `json:"timezone"`
	From     string `json:"from"`
	To       string `json:"to"`
	Days     []Day  `json:"days"`
}

// Day модель дня календаря
type Day struct {
	Date   string      `json:"date"`
	IsOpen bool        `json:"isOpen"`
	Times  []TimeEntry `json:"times"`
	Note   *string     `json:"note,omitempty"`
}

// TimeEntry модель времени начала съёмки
type TimeEntry struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]Day, len(resp.Days))
	for i, day := range resp.Days {
		times := make([]TimeEntry, len(day.Times))
		for j, t := range day.Times {
			times[j] = TimeEntry{
				Time:      t.Time,
				Available: t.Available,
			}
		}

		days[i] = Day{
			Date:   day.Date.String(),
			IsOpen: day.IsOpen,
			Times:  times,
			Note:   day.Note,
		}
	}

	return &AvailabilityResponse{
		Timezone: resp.Timezone,
		From:     resp.From.String(),
		To:       resp.To.String(),
		Days:     days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(from, to string) *getAvailability.Request {
	return &getAvailability.Request{
		From: from,
		To:   to,
	}
}
