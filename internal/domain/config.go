package domain

import "cloud.google.com/go/civil"

// AvailabilitySettings настройки доступности для бронирования
// Приходят из CMS, неизменяемы в рамках одного запроса
type AvailabilitySettings struct {
	Timezone      string // Часовой пояс для отображения, в расчётах не используется
	DefaultClosed bool   // true = день закрыт, пока не попадает в открытый диапазон
	AdvanceDays   int    // Горизонт окна по умолчанию, 0 = DefaultAdvanceDays
	StartTimes    []string
	OpenRanges    []OpenRange
	ClosedDates   []civil.Date
	BlockedSlots  []BlockedSlot
}

// OpenRange включительный диапазон дат, в который дни открыты
type OpenRange struct {
	From civil.Date
	To   civil.Date
	Note *string
}

// Contains проверяет, что дата попадает в диапазон (обе границы включительно)
// Диапазон с From > To не содержит ни одной даты
func (r OpenRange) Contains(d civil.Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// BlockedSlot набор заблокированных времён начала на конкретную дату
type BlockedSlot struct {
	Date   civil.Date
	Times  []string
	Reason *string
}

// EffectiveAdvanceDays возвращает горизонт окна с учетом значения по умолчанию
func (s *AvailabilitySettings) EffectiveAdvanceDays() int {
	if s.AdvanceDays <= 0 {
		return DefaultAdvanceDays
	}
	return s.AdvanceDays
}

// HasStartTime проверяет, что время входит в список настроенных времён начала
func (s *AvailabilitySettings) HasStartTime(t string) bool {
	for _, st := range s.StartTimes {
		if st == t {
			return true
		}
	}
	return false
}
