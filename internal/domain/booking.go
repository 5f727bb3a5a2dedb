package domain

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// BookingRequestStatus статус заявки на съёмку
type BookingRequestStatus string

const (
	StatusNew       BookingRequestStatus = "new"
	StatusConfirmed BookingRequestStatus = "confirmed"
	StatusDone      BookingRequestStatus = "done"
	StatusCancelled BookingRequestStatus = "cancelled"
)

// BookingRequest заявка на бронирование, подтверждается вручную
type BookingRequest struct {
	ID        int64
	Reference uuid.UUID // Публичный идентификатор для клиента
	Date      civil.Date
	Time      string
	Timezone  string

	Name    string
	Email   string
	Phone   *string
	Message *string
	Consent bool

	Status BookingRequestStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// allowedTransitions допустимые переходы статусов
// done и cancelled - конечные
var allowedTransitions = map[BookingRequestStatus][]BookingRequestStatus{
	StatusNew:       {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDone, StatusCancelled},
}

// IsValid проверяет, что статус известен
func (s BookingRequestStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// IsFinal возвращает true для конечных статусов
func (s BookingRequestStatus) IsFinal() bool {
	return s == StatusDone || s == StatusCancelled
}

// CanTransitionTo проверяет, что переход из текущего статуса в next разрешён
func (b *BookingRequest) CanTransitionTo(next BookingRequestStatus) bool {
	for _, allowed := range allowedTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingRequestsFilter фильтр для списка заявок
type BookingRequestsFilter struct {
	Status   *BookingRequestStatus // nil - все статусы
	FromDate *civil.Date           // Начало периода по дате съёмки (включительно)
	ToDate   *civil.Date           // Конец периода (включительно)
	Limit    int                   // 0 - DefaultListLimit
}
