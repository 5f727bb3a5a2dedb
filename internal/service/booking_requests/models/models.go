package models

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking request status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// ListRequest запрос на получение списка заявок
type ListRequest struct {
	Status   *string `json:"status,omitempty"`   // Фильтр по статусу (опционально)
	FromDate *string `json:"fromDate,omitempty"` // Начало периода по дате съёмки
	ToDate   *string `json:"toDate,omitempty"`   // Конец периода по дате съёмки
	Limit    int     `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.BookingRequestsFilter, error) {
	filter := domain.BookingRequestsFilter{Limit: r.Limit}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.FromDate != nil {
		d, err := civil.ParseDate(*r.FromDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.FromDate = &d
	}

	if r.ToDate != nil {
		d, err := civil.ParseDate(*r.ToDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.ToDate = &d
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса заявки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingRequestResponse ответ с данными заявки
type BookingRequestResponse struct {
	ID        int64   `json:"id"`
	Reference string  `json:"reference"`
	Date      string  `json:"date"` // "2025-07-02"
	Time      string  `json:"time"` // "10:00"
	Timezone  string  `json:"timezone"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Message   *string `json:"message,omitempty"`
	Consent   bool    `json:"consent"`
	Status    string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingRequestListResponse ответ со списком заявок
type BookingRequestListResponse struct {
	BookingRequests []BookingRequestResponse `json:"bookingRequests"`
}

// Методы конвертации

// FromDomainBookingRequest конвертирует domain модель в DTO
func FromDomainBookingRequest(b *domain.BookingRequest) *BookingRequestResponse {
	if b == nil {
		return nil
	}

	return &BookingRequestResponse{
		ID:        b.ID,
		Reference: b.Reference.String(),
		Date:      b.Date.String(),
		Time:      b.Time,
		Timezone:  b.Timezone,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Message:   b.Message,
		Consent:   b.Consent,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingRequestList конвертирует список domain моделей в DTO
func FromDomainBookingRequestList(list []*domain.BookingRequest) *BookingRequestListResponse {
	resp := &BookingRequestListResponse{
		BookingRequests: make([]BookingRequestResponse, 0, len(list)),
	}

	for _, b := range list {
		if item := FromDomainBookingRequest(b); item != nil {
			resp.BookingRequests = append(resp.BookingRequests, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.BookingRequestStatus с валидацией
func ToDomainStatus(status string) (domain.BookingRequestStatus, error) {
	s := domain.BookingRequestStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
