package get_availability

import (
	"cloud.google.com/go/civil"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Request модель запроса календаря доступности
// Пустая строка означает, что параметр не передан
type Request struct {
	From string // YYYY-MM-DD, по умолчанию сегодня
	To   string // YYYY-MM-DD, по умолчанию From + advanceDays
}

// Response модель ответа с календарём
type Response struct {
	Timezone string
	From     civil.Date // Фактическое начало окна
	To       civil.Date // Фактический конец окна (после обрезки)
	Days     []domain.AvailabilityDay
}
