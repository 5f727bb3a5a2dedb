package create_booking_request

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Request модель запроса на создание заявки
type Request struct {
	Date    string  `validate:"required,civil_date"`
	Time    string  `validate:"required,max=16"`
	Name    string  `validate:"required,max=200"`
	Email   string  `validate:"required,email,max=254"`
	Phone   *string `validate:"omitempty,max=32"`
	Message *string `validate:"omitempty,max=2000"`
	Consent bool    `validate:"required"` // Согласие на обработку данных, должно быть true
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID        int64
	Reference uuid.UUID
	Status    string
	Date      civil.Date
	Time      string
	Timezone  string
	CreatedAt time.Time
}
